package commands

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestRestartableRunner_RestartsUntilLimit(t *testing.T) {
	var runs int32
	r := NewRestartableRunner(RunnerConfig{
		Name:           "test",
		MaxRestarts:    3,
		RestartBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}, func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return fmt.Errorf("boom")
	})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("Runner did not give up")
	}

	if got := atomic.LoadInt32(&runs); got != 3 {
		t.Errorf("Expected 3 runs, got %d", got)
	}
	if r.LastError() == nil || r.RestartCount() != 3 {
		t.Errorf("Unexpected final state: err=%v restarts=%d", r.LastError(), r.RestartCount())
	}
	if r.IsRunning() {
		t.Error("Expected runner to be stopped")
	}
}

func TestRestartableRunner_RecoversPanic(t *testing.T) {
	var runs int32
	r := NewRestartableRunner(RunnerConfig{
		Name:           "test",
		RestartBackoff: time.Millisecond,
	}, func(ctx context.Context) error {
		if atomic.AddInt32(&runs, 1) == 1 {
			panic("first run")
		}
		return nil
	})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	<-r.Done()

	if atomic.LoadInt32(&runs) != 2 || r.LastError() != nil {
		t.Errorf("Expected clean second run, got runs=%d err=%v", atomic.LoadInt32(&runs), r.LastError())
	}
}

func TestRestartableRunner_Stop(t *testing.T) {
	r := NewRestartableRunner(RunnerConfig{Name: "test"}, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := r.Start(context.Background()); err == nil {
		t.Error("Expected error when starting twice")
	}

	if err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if r.IsRunning() {
		t.Error("Expected runner to be stopped")
	}
	if r.RestartCount() != 0 {
		t.Errorf("Expected no restarts on stop, got %d", r.RestartCount())
	}
}

func TestRestartableRunner_StopBeforeStart(t *testing.T) {
	r := NewRestartableRunner(RunnerConfig{Name: "test"}, func(ctx context.Context) error { return nil })

	if err := r.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

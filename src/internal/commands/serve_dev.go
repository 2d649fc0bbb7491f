package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/devserver"
	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

func CreateServeDevCommand() *ServeDevCommand {
	sc := &ServeDevCommand{
		fs: flag.NewFlagSet("serve-dev", flag.ExitOnError),
	}

	sc.fs.StringVar(&sc.Bind, "bind", "", "Address to listen on (default: dev_server.bind from config, 127.0.0.1:3001)")
	sc.fs.StringVar(&sc.Seed, "seed", "", "json-server db.json to load contacts from")

	return sc
}

// ServeDevCommand runs the in-memory contacts service.
type ServeDevCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	Bind string
	Seed string

	store  *devserver.Store
	runner *RestartableRunner
}

func (s *ServeDevCommand) Name() string {
	return s.fs.Name()
}

func (s *ServeDevCommand) Init(args []string, ctx *AppContext) error {
	s.ctx = ctx

	if err := s.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		s.cfg = cfg
	}

	if s.Bind == "" {
		s.Bind = s.cfg.DevServer.Bind
	}
	if s.Seed == "" {
		s.Seed = s.cfg.GetAbsSeedFile()
	}

	var seed []persons.Contact
	if s.Seed != "" {
		contacts, err := devserver.LoadSeed(s.Seed)
		if err != nil {
			return err
		}
		log.Infof("Loaded %d contacts from %s", len(contacts), s.Seed)
		seed = contacts
	}
	s.store = devserver.NewStore(seed...)

	s.runner = NewRestartableRunner(RunnerConfig{
		Name:        "dev-server",
		MaxRestarts: 5,
	}, s.serve)

	return nil
}

// serve runs one server instance until ctx is done. The store outlives
// restarts.
func (s *ServeDevCommand) serve(ctx context.Context) error {
	srv := devserver.NewServer(s.Bind, s.store)
	if err := srv.Listen(); err != nil {
		return err
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Errorf("Failed to stop dev server: %v", err)
		}
	}()

	err := srv.Start()
	if ctx.Err() != nil {
		<-stopped
		return nil
	}
	if err == nil {
		err = fmt.Errorf("dev server stopped unexpectedly")
	}
	return err
}

func (s *ServeDevCommand) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := s.runner.Start(ctx); err != nil {
		return err
	}

	select {
	case sig := <-sigChan:
		log.Infof("Received signal %v, shutting down...", sig)
	case <-s.runner.Done():
		if err := s.runner.LastError(); err != nil {
			return err
		}
		return nil
	}

	return s.runner.Stop()
}

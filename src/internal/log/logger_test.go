package log

import (
	"bytes"
	"strings"
	"testing"
)

// withBuffer redirects the logger into a buffer and restores global state afterwards.
func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()

	originalVerbose := IsVerbose()
	originalDisabled := IsDisabled()

	buf := &bytes.Buffer{}
	SetOutput(buf)

	t.Cleanup(func() {
		SetOutput(nil)
		SetVerbose(originalVerbose)
		if originalDisabled {
			DisableLogs()
		} else {
			EnableLogs()
		}
	})

	return buf
}

func TestSetVerbose(t *testing.T) {
	withBuffer(t)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose to be true")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose to be false")
	}
}

func TestDebugf_VerboseOff(t *testing.T) {
	buf := withBuffer(t)
	SetVerbose(false)

	Debugf("hidden %d", 1)

	if buf.Len() != 0 {
		t.Errorf("Expected no output when verbose is off, got %q", buf.String())
	}
}

func TestDebugf_VerboseOn(t *testing.T) {
	buf := withBuffer(t)
	SetVerbose(true)

	Debugf("shown %d", 2)

	if got := buf.String(); got != "[DBG] shown 2\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name   string
		log    func(string, ...interface{})
		prefix string
	}{
		{name: "info", log: Infof, prefix: "[INF]"},
		{name: "warn", log: Warnf, prefix: "[WRN]"},
		{name: "error", log: Errorf, prefix: "[ERR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withBuffer(t)

			tt.log("hello %s", "world")

			got := buf.String()
			if !strings.HasPrefix(got, tt.prefix+" ") {
				t.Errorf("Expected prefix %s, got %q", tt.prefix, got)
			}
			if !strings.Contains(got, "hello world") {
				t.Errorf("Expected formatted message, got %q", got)
			}
			if strings.Contains(got, "\033[") {
				t.Errorf("Expected no ANSI colours in redirected output, got %q", got)
			}
		})
	}
}

func TestDisableLogs(t *testing.T) {
	buf := withBuffer(t)

	DisableLogs()
	Infof("should not appear")
	Errorf("should not appear either")

	if buf.Len() != 0 {
		t.Errorf("Expected no output when logs are disabled, got %q", buf.String())
	}

	EnableLogs()
	Infof("back")
	if !strings.Contains(buf.String(), "back") {
		t.Errorf("Expected output after EnableLogs, got %q", buf.String())
	}
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/phonebook"
	"github.com/maksimkurb/phonebook/src/internal/tui"
	"github.com/maksimkurb/phonebook/src/internal/utils"
)

func CreateTUICommand() *TUICommand {
	return &TUICommand{
		fs: flag.NewFlagSet("tui", flag.ExitOnError),
	}
}

// TUICommand runs the interactive terminal UI.
type TUICommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (t *TUICommand) Name() string {
	return t.fs.Name()
}

func (t *TUICommand) Init(args []string, ctx *AppContext) error {
	t.ctx = ctx

	if err := t.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		t.cfg = cfg
	}

	return nil
}

func (t *TUICommand) Run() error {
	// The terminal belongs to the UI while it runs.
	logFile, err := t.redirectLogs()
	if err != nil {
		return err
	}
	defer func() {
		log.SetOutput(nil)
		if logFile != nil {
			utils.CloseOrWarn(logFile)
		}
	}()

	controller, err := newController(t.cfg)
	if err != nil {
		return err
	}
	executor := phonebook.NewExecutor(dependencies(t.ctx, t.cfg).PersonsClient())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting terminal UI against %s", t.cfg.Remote.BaseURL)
	return tui.Run(ctx, controller, executor)
}

func (t *TUICommand) redirectLogs() (*os.File, error) {
	path := t.cfg.GetAbsLogFile()
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}
	log.SetOutput(f)
	return f, nil
}

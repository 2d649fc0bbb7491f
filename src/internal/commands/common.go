package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/domain"
	apperrors "github.com/maksimkurb/phonebook/src/internal/errors"
	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/phonebook"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	// ConfigExplicit is set when the config path was given on the command
	// line. A missing explicit config file is an error.
	ConfigExplicit bool
	Verbose        bool
	// BaseURL overrides remote.base_url when not empty.
	BaseURL string

	// Deps replaces the production dependencies when set.
	Deps *domain.AppDependencies

	Stdin  io.Reader
	Stdout io.Writer
}

func (ctx *AppContext) stdin() io.Reader {
	if ctx.Stdin != nil {
		return ctx.Stdin
	}
	return os.Stdin
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout != nil {
		return ctx.Stdout
	}
	return os.Stdout
}

// loadAndValidateConfigOrFail loads the configuration file, falls back to
// defaults when an implicit config path does not exist, applies command-line
// overrides and validates the result.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	var cfg *config.Config

	if _, err := os.Stat(ctx.ConfigPath); errors.Is(err, os.ErrNotExist) && !ctx.ConfigExplicit {
		log.Debugf("Configuration file %s not found, using defaults", ctx.ConfigPath)
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.LoadConfig(ctx.ConfigPath)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to load configuration", err)
		}
		cfg = loaded
	}

	if ctx.BaseURL != "" {
		cfg.Remote.BaseURL = ctx.BaseURL
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, apperrors.NewConfigError("configuration validation failed", err)
	}

	if cfg.Log.Verbose {
		log.SetVerbose(true)
	}

	return cfg, nil
}

func dependencies(ctx *AppContext, cfg *config.Config) *domain.AppDependencies {
	if ctx.Deps != nil {
		return ctx.Deps
	}
	return domain.NewAppDependencies(domain.AppConfig{
		BaseURL:        cfg.Remote.BaseURL,
		RequestTimeout: cfg.Remote.RequestTimeout.Std(),
	})
}

func newController(cfg *config.Config) (*phonebook.Controller, error) {
	templates, err := phonebook.NewTemplates(cfg.Messages)
	if err != nil {
		return nil, err
	}
	return phonebook.NewController(cfg.UI.MessageLifetime.Std(), templates), nil
}

// cliSession is a phonebook session that prints notifications and remembers
// the last error message.
type cliSession struct {
	*phonebook.Session
	out     io.Writer
	lastErr *phonebook.Message
}

func newCLISession(ctx *AppContext, cfg *config.Config) (*cliSession, error) {
	controller, err := newController(cfg)
	if err != nil {
		return nil, err
	}

	executor := phonebook.NewExecutor(dependencies(ctx, cfg).PersonsClient())

	s := &cliSession{
		Session: phonebook.NewSession(controller, executor),
		out:     ctx.stdout(),
	}
	s.OnMessage = func(slot phonebook.Slot, msg phonebook.Message) {
		if slot == phonebook.SlotError {
			m := msg
			s.lastErr = &m
			log.Errorf("%s", msg.Text)
			return
		}
		fmt.Fprintln(s.out, msg.Text)
	}
	return s, nil
}

// failure returns the last error message as an error, if any.
func (s *cliSession) failure() error {
	if s.lastErr == nil {
		return nil
	}
	return errors.New(s.lastErr.Text)
}

// confirm asks prompt on out and reads a yes/no answer from in.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

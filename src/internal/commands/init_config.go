package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/log"
)

func CreateInitConfigCommand() *InitConfigCommand {
	ic := &InitConfigCommand{
		fs: flag.NewFlagSet("init-config", flag.ExitOnError),
	}

	ic.fs.BoolVar(&ic.Force, "force", false, "Overwrite an existing configuration file")

	return ic
}

// InitConfigCommand writes a configuration file with every default spelled
// out.
type InitConfigCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	Force bool
}

func (c *InitConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	return c.fs.Parse(args)
}

func (c *InitConfigCommand) Run() error {
	if _, err := os.Stat(c.ctx.ConfigPath); err == nil && !c.Force {
		return fmt.Errorf("configuration file %s already exists, use -force to overwrite", c.ctx.ConfigPath)
	}

	cfg := config.DefaultConfig()
	if c.ctx.BaseURL != "" {
		cfg.Remote.BaseURL = c.ctx.BaseURL
	}
	if err := cfg.ValidateConfig(); err != nil {
		return err
	}

	if err := cfg.SetConfigPath(c.ctx.ConfigPath); err != nil {
		return err
	}
	if err := cfg.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write configuration: %v", err)
	}

	log.Infof("Configuration written to %s", c.ctx.ConfigPath)
	return nil
}

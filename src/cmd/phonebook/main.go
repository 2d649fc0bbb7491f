package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/phonebook/src/internal/commands"
	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath(), "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&ctx.BaseURL, "base-url", "", "URL of the contacts collection (overrides remote.base_url)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Phonebook\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [command]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  tui                     Interactive terminal UI (default)\n")
		fmt.Fprintf(os.Stderr, "  list                    Print contacts (-search <regex>)\n")
		fmt.Fprintf(os.Stderr, "  add                     Add a contact or replace its number (-name, -number, -yes)\n")
		fmt.Fprintf(os.Stderr, "  delete                  Delete a contact (-name or -id, -yes)\n")
		fmt.Fprintf(os.Stderr, "  serve-dev               Run an in-memory contacts service (-bind, -seed)\n")
		fmt.Fprintf(os.Stderr, "  init-config             Write a configuration file with defaults (-force)\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			ctx.ConfigExplicit = true
		}
	})

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	// stdout carries command output only
	log.SetForceStdErr(true)

	cmds := []commands.Runner{
		commands.CreateTUICommand(),
		commands.CreateListCommand(),
		commands.CreateAddCommand(),
		commands.CreateDeleteCommand(),
		commands.CreateServeDevCommand(),
		commands.CreateInitConfigCommand(),
	}

	args := flag.Args()

	subcommand := "tui"
	if len(args) > 0 {
		subcommand, args = args[0], args[1:]
	}

	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args, ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("%v", err)
			}

			os.Exit(0)
		}
	}

	flag.Usage()
	log.Fatalf("Unknown subcommand: %s", subcommand)
}

// Package commands implements the CLI subcommands of phonebook.
//
// Every command implements Runner:
//   - Init(): parse arguments and load configuration
//   - Run(): execute the command
//   - Name(): return command name for routing
//
// # Available Commands
//
//   - tui: interactive terminal UI (default)
//   - list: print contacts, optionally filtered by a search pattern
//   - add: add a contact or replace the number of an existing one
//   - delete: delete a contact by name or id
//   - serve-dev: run the in-memory contacts service for local development
//   - init-config: write a configuration file with the defaults
//
// The list, add and delete commands drive the same phonebook controller as
// the terminal UI, one event at a time, and answer confirmations from stdin
// unless -yes is given.
//
// # Example Usage
//
//	cmd := commands.CreateAddCommand()
//	ctx := &commands.AppContext{ConfigPath: config.DefaultConfigPath()}
//	if err := cmd.Init([]string{"-name", "Ada", "-number", "040-123"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands

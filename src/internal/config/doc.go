// Package config handles configuration file parsing and validation for phonebook.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. Every section is optional;
// missing values are filled with defaults by LoadConfig and DefaultConfig.
//
// # Configuration Structure
//
//	[remote]
//	base_url = "http://localhost:3001/persons/"
//	request_timeout = "10s"        # empty or "0s" means no timeout
//
//	[ui]
//	message_lifetime = "4s"
//
//	[log]
//	file = "/tmp/phonebook.log"    # used while the terminal UI is running
//	verbose = false
//
//	[messages]
//	added = "{{name}} has been added to the phonebook"
//
//	[dev_server]
//	bind = "127.0.0.1:3001"
//	seed_file = "db.json"
//
// Message templates use {{name}}, {{number}} and {{error}} placeholders.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/home/user/.config/phonebook/phonebook.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package config

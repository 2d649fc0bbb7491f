package config

import (
	"path/filepath"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/utils"
)

type Config struct {
	// Remote holds the contacts service settings.
	Remote *RemoteConfig `toml:"remote" json:"remote"`
	// UI holds terminal UI settings.
	UI *UIConfig `toml:"ui" json:"ui"`
	// Log holds logging settings.
	Log *LogConfig `toml:"log" json:"log"`
	// Messages overrides user-visible texts. Empty values keep the built-in text.
	Messages *MessagesConfig `toml:"messages" json:"messages"`
	// DevServer holds settings of the in-memory development service.
	DevServer *DevServerConfig `toml:"dev_server" json:"dev_server"`

	_absConfigFilePath string
}

type RemoteConfig struct {
	// BaseURL is the URL of the contacts collection (default: http://localhost:3001/persons/).
	BaseURL string `toml:"base_url" json:"base_url" validate:"required,service_url"`
	// RequestTimeout bounds every call to the service (default: 0, no timeout).
	RequestTimeout Duration `toml:"request_timeout" json:"request_timeout" validate:"gte=0"`
}

type UIConfig struct {
	// MessageLifetime is how long notifications and errors stay visible (default: 4s).
	MessageLifetime Duration `toml:"message_lifetime" json:"message_lifetime" validate:"gt=0"`
}

type LogConfig struct {
	// File receives logs while the terminal UI is running. Empty discards them.
	File string `toml:"file" json:"file"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" json:"verbose"`
}

type MessagesConfig struct {
	Added          string `toml:"added,omitempty" json:"added,omitempty" validate:"template"`
	Updated        string `toml:"updated,omitempty" json:"updated,omitempty" validate:"template"`
	Deleted        string `toml:"deleted,omitempty" json:"deleted,omitempty" validate:"template"`
	AlreadyDeleted string `toml:"already_deleted,omitempty" json:"already_deleted,omitempty" validate:"template"`
	UpdateFailed   string `toml:"update_failed,omitempty" json:"update_failed,omitempty" validate:"template"`
	CreateFailed   string `toml:"create_failed,omitempty" json:"create_failed,omitempty" validate:"template"`
	DeleteFailed   string `toml:"delete_failed,omitempty" json:"delete_failed,omitempty" validate:"template"`
	FetchFailed    string `toml:"fetch_failed,omitempty" json:"fetch_failed,omitempty" validate:"template"`
	EmptyName      string `toml:"empty_name,omitempty" json:"empty_name,omitempty" validate:"template"`
	ConfirmReplace string `toml:"confirm_replace,omitempty" json:"confirm_replace,omitempty" validate:"template"`
	ConfirmDelete  string `toml:"confirm_delete,omitempty" json:"confirm_delete,omitempty" validate:"template"`
}

type DevServerConfig struct {
	// Bind is the listen address of serve-dev (default: 127.0.0.1:3001).
	Bind string `toml:"bind" json:"bind" validate:"hostport_or_empty"`
	// SeedFile is a json-server style db.json loaded at start (optional).
	SeedFile string `toml:"seed_file,omitempty" json:"seed_file,omitempty"`
}

// Duration is a time.Duration written as a string ("4s", "1m30s") in TOML.
type Duration time.Duration

// Std returns the value as time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsSeedFile resolves dev_server.seed_file relative to the config file directory.
func (c *Config) GetAbsSeedFile() string {
	if c.DevServer == nil {
		return ""
	}
	return c.resolvePath(c.DevServer.SeedFile)
}

// GetAbsLogFile resolves log.file relative to the config file directory.
func (c *Config) GetAbsLogFile() string {
	if c.Log == nil {
		return ""
	}
	return c.resolvePath(c.Log.File)
}

func (c *Config) resolvePath(path string) string {
	if c._absConfigFilePath == "" {
		return path
	}
	return utils.GetAbsolutePath(path, c.GetConfigDir())
}

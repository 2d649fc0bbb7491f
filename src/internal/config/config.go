package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/phonebook/src/internal/log"
)

const (
	DefaultBaseURL         = "http://localhost:3001/persons/"
	DefaultMessageLifetime = 4 * time.Second
	DefaultDevServerBind   = "127.0.0.1:3001"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/phonebook/phonebook.toml or its
// platform equivalent.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "phonebook.toml"
	}
	return filepath.Join(dir, "phonebook", "phonebook.toml")
}

// DefaultConfig returns a configuration with every default filled in.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Contacts service: %s", config.Remote.BaseURL)

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Remote == nil {
		c.Remote = &RemoteConfig{}
	}
	if c.Remote.BaseURL == "" {
		c.Remote.BaseURL = DefaultBaseURL
	}

	if c.UI == nil {
		c.UI = &UIConfig{}
	}
	if c.UI.MessageLifetime == 0 {
		c.UI.MessageLifetime = Duration(DefaultMessageLifetime)
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}

	if c.Messages == nil {
		c.Messages = &MessagesConfig{}
	}

	if c.DevServer == nil {
		c.DevServer = &DevServerConfig{}
	}
	if c.DevServer.Bind == "" {
		c.DevServer.Bind = DefaultDevServerBind
	}
}

// SetConfigPath sets the path WriteConfig writes to.
func (c *Config) SetConfigPath(path string) error {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}
	c._absConfigFilePath = abs
	return nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.GetConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %v", err)
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}

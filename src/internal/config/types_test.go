package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", input: "4s", want: 4 * time.Second},
		{name: "compound", input: "1m30s", want: 90 * time.Second},
		{name: "empty", input: "", want: 0},
		{name: "invalid", input: "four seconds", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && d.Std() != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, d.Std(), tt.want)
			}
		})
	}
}

func TestConfig_GetAbsSeedFile(t *testing.T) {
	config := &Config{
		DevServer:          &DevServerConfig{SeedFile: "db.json"},
		_absConfigFilePath: "/home/user/.config/phonebook/phonebook.toml",
	}

	expected := filepath.Join("/home/user/.config/phonebook", "db.json")
	if result := config.GetAbsSeedFile(); result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}

	config.DevServer.SeedFile = "/srv/db.json"
	if result := config.GetAbsSeedFile(); result != "/srv/db.json" {
		t.Errorf("Expected absolute path to be kept, got %s", result)
	}

	config.DevServer.SeedFile = ""
	if result := config.GetAbsSeedFile(); result != "" {
		t.Errorf("Expected empty seed file, got %s", result)
	}
}

func TestConfig_GetAbsLogFile(t *testing.T) {
	config := &Config{
		Log:                &LogConfig{File: "phonebook.log"},
		_absConfigFilePath: "/etc/phonebook/phonebook.toml",
	}

	if result := config.GetAbsLogFile(); result != "/etc/phonebook/phonebook.log" {
		t.Errorf("Expected log file next to config, got %s", result)
	}

	defaults := DefaultConfig()
	defaults.Log.File = "relative.log"
	if result := defaults.GetAbsLogFile(); result != "relative.log" {
		t.Errorf("Expected path unchanged without a config file, got %s", result)
	}
}

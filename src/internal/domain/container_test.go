package domain

import (
	"testing"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

func TestNewAppDependencies(t *testing.T) {
	t.Run("Default configuration", func(t *testing.T) {
		deps := NewAppDependencies(AppConfig{})

		client, ok := deps.PersonsClient().(*persons.Client)
		if !ok {
			t.Fatalf("Expected *persons.Client, got %T", deps.PersonsClient())
		}
		if client.BaseURL() != persons.DefaultBaseURL {
			t.Errorf("Expected default base URL, got %s", client.BaseURL())
		}
	})

	t.Run("Custom base URL", func(t *testing.T) {
		deps := NewAppDependencies(AppConfig{
			BaseURL:        "http://10.0.0.5:3001/persons",
			RequestTimeout: time.Second,
		})

		client, ok := deps.PersonsClient().(*persons.Client)
		if !ok {
			t.Fatalf("Expected *persons.Client, got %T", deps.PersonsClient())
		}
		if client.BaseURL() != "http://10.0.0.5:3001/persons/" {
			t.Errorf("Unexpected base URL %s", client.BaseURL())
		}
	})
}

func TestNewTestDependencies(t *testing.T) {
	deps := NewTestDependencies(nil)
	if deps.PersonsClient() != nil {
		t.Error("Expected nil client to be kept as is")
	}
}

func TestPersonsClientReturnsSameInstance(t *testing.T) {
	deps := NewDefaultDependencies()

	client1 := deps.PersonsClient()
	client2 := deps.PersonsClient()

	if client1 == nil {
		t.Fatal("Expected persons client to be created")
	}
	if client1 != client2 {
		t.Error("Expected same persons client instance on multiple calls")
	}
}

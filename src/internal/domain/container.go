package domain

import (
	"time"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Usage:
//
//	deps := domain.NewAppDependencies(domain.AppConfig{
//	    BaseURL: "http://192.168.1.10:3001/persons/",
//	})
//	client := deps.PersonsClient()
type AppDependencies struct {
	personsClient PersonsClient
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// BaseURL is the URL of the contacts collection.
	// If empty, defaults to "http://localhost:3001/persons/".
	BaseURL string

	// RequestTimeout bounds each call to the contacts service. Zero means no bound.
	RequestTimeout time.Duration
}

// NewAppDependencies creates a new dependency container with production implementations.
//
// For testing, use NewTestDependencies or inject mocks directly.
func NewAppDependencies(cfg AppConfig) *AppDependencies {
	var client *persons.Client
	if cfg.BaseURL == "" {
		client = persons.NewClient(nil)
	} else {
		client = persons.NewClientWithBaseURL(cfg.BaseURL, nil)
	}
	client.SetRequestTimeout(cfg.RequestTimeout)

	return &AppDependencies{
		personsClient: client,
	}
}

// NewDefaultDependencies creates dependencies using default configuration.
func NewDefaultDependencies() *AppDependencies {
	return NewAppDependencies(AppConfig{})
}

// NewTestDependencies creates a dependency container with the given client implementation.
func NewTestDependencies(personsClient PersonsClient) *AppDependencies {
	return &AppDependencies{
		personsClient: personsClient,
	}
}

// PersonsClient returns the contacts service client.
func (d *AppDependencies) PersonsClient() PersonsClient {
	return d.personsClient
}

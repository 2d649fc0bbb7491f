// Package domain defines core interfaces for dependency injection and abstraction.
//
// This package contains the fundamental interfaces that enable loose coupling between
// components and facilitate testing through dependency injection.
package domain

import (
	"context"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// PersonsClient defines the interface for the contacts service.
//
// This interface abstracts the HTTP client, allowing for easy mocking in tests.
type PersonsClient interface {
	// GetAll returns the full current collection of contacts.
	GetAll(ctx context.Context) ([]persons.Contact, error)

	// Create adds a contact and returns the stored record with its assigned id.
	Create(ctx context.Context, input persons.ContactInput) (*persons.Contact, error)

	// Update replaces name and number of the contact with the given id.
	Update(ctx context.Context, id persons.ID, input persons.ContactInput) error

	// Delete removes the contact with the given id.
	Delete(ctx context.Context, id persons.ID) error
}

// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
package mocks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/maksimkurb/phonebook/src/internal/errors"
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// Call records a single invocation of the mock client.
type Call struct {
	Method string
	ID     persons.ID
	Input  persons.ContactInput
}

// MockPersonsClient is a mock implementation of the PersonsClient interface.
//
// It allows tests to provide custom behavior for each method through function fields.
// If a function field is nil, the mock behaves like an in-memory contacts service.
// Every call is recorded and can be inspected with Calls.
//
// Example usage:
//
//	mock := NewMockPersonsClientWithContacts(persons.Contact{ID: "1", Name: "Ada", Number: "1"})
//	mock.UpdateFunc = func(ctx context.Context, id persons.ID, in persons.ContactInput) error {
//	    return errors.NewNotFoundError("gone", nil)
//	}
type MockPersonsClient struct {
	// GetAllFunc is called by GetAll if not nil
	GetAllFunc func(ctx context.Context) ([]persons.Contact, error)

	// CreateFunc is called by Create if not nil
	CreateFunc func(ctx context.Context, input persons.ContactInput) (*persons.Contact, error)

	// UpdateFunc is called by Update if not nil
	UpdateFunc func(ctx context.Context, id persons.ID, input persons.ContactInput) error

	// DeleteFunc is called by Delete if not nil
	DeleteFunc func(ctx context.Context, id persons.ID) error

	mu       sync.Mutex
	contacts []persons.Contact
	nextID   int
	calls    []Call
}

// GetAll returns the contacts.
//
// If GetAllFunc is set, it calls that function.
// Otherwise, returns a copy of the in-memory collection.
func (m *MockPersonsClient) GetAll(ctx context.Context) ([]persons.Contact, error) {
	m.record(Call{Method: "GetAll"})
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return m.Contacts(), nil
}

// Create adds a contact.
//
// If CreateFunc is set, it calls that function.
// Otherwise, appends the contact with the next numeric id.
func (m *MockPersonsClient) Create(ctx context.Context, input persons.ContactInput) (*persons.Contact, error) {
	m.record(Call{Method: "Create", Input: input})
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	contact := persons.Contact{ID: persons.ID(strconv.Itoa(m.nextID)), Name: input.Name, Number: input.Number}
	m.contacts = append(m.contacts, contact)
	return &contact, nil
}

// Update replaces a contact.
//
// If UpdateFunc is set, it calls that function.
// Otherwise, updates the in-memory contact or returns a NOT_FOUND error.
func (m *MockPersonsClient) Update(ctx context.Context, id persons.ID, input persons.ContactInput) error {
	m.record(Call{Method: "Update", ID: id, Input: input})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts[i].Name = input.Name
			m.contacts[i].Number = input.Number
			return nil
		}
	}
	return errors.NewNotFoundError(fmt.Sprintf("contact %s", id), nil)
}

// Delete removes a contact.
//
// If DeleteFunc is set, it calls that function.
// Otherwise, removes the in-memory contact; deleting a missing id is a no-op.
func (m *MockPersonsClient) Delete(ctx context.Context, id persons.ID) error {
	m.record(Call{Method: "Delete", ID: id})
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			break
		}
	}
	return nil
}

// Contacts returns a copy of the in-memory collection.
func (m *MockPersonsClient) Contacts() []persons.Contact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]persons.Contact{}, m.contacts...)
}

// Calls returns a copy of every recorded call in order.
func (m *MockPersonsClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsTo returns the recorded calls of one method.
func (m *MockPersonsClient) CallsTo(method string) []Call {
	var result []Call
	for _, call := range m.Calls() {
		if call.Method == method {
			result = append(result, call)
		}
	}
	return result
}

func (m *MockPersonsClient) record(call Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// NewMockPersonsClient creates a new mock client with an empty collection.
func NewMockPersonsClient() *MockPersonsClient {
	return &MockPersonsClient{}
}

// NewMockPersonsClientWithContacts creates a mock client seeded with contacts.
//
// Ids assigned by Create continue after the highest numeric seeded id.
func NewMockPersonsClientWithContacts(contacts ...persons.Contact) *MockPersonsClient {
	m := &MockPersonsClient{contacts: append([]persons.Contact{}, contacts...)}
	for _, c := range contacts {
		if n, err := strconv.Atoi(c.ID.String()); err == nil && n > m.nextID {
			m.nextID = n
		}
	}
	return m
}

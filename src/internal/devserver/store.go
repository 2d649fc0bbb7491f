package devserver

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// Store is a concurrency-safe in-memory contacts collection. Contacts keep
// their insertion order.
type Store struct {
	mu       sync.RWMutex
	contacts []persons.Contact
	newID    func() persons.ID
}

// NewStore creates a store holding a copy of seed. New contacts get random
// UUIDs.
func NewStore(seed ...persons.Contact) *Store {
	return &Store{
		contacts: append([]persons.Contact{}, seed...),
		newID: func() persons.ID {
			return persons.ID(uuid.NewString())
		},
	}
}

// seedFile is the json-server db.json layout.
type seedFile struct {
	Persons []persons.Contact `json:"persons"`
}

// LoadSeed reads contacts from a json-server style db.json file.
func LoadSeed(path string) ([]persons.Contact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var db seedFile
	if err := json.Unmarshal(content, &db); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seen := make(map[persons.ID]struct{}, len(db.Persons))
	for i, c := range db.Persons {
		if c.ID.IsZero() {
			return nil, fmt.Errorf("seed contact #%d (%s) has no id", i, c.Name)
		}
		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("seed contact id %s is duplicated", c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return db.Persons, nil
}

func (s *Store) List() []persons.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]persons.Contact{}, s.contacts...)
}

func (s *Store) Get(id persons.ID) (persons.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return persons.Contact{}, false
	}
	return s.contacts[i], true
}

func (s *Store) Create(input persons.ContactInput) persons.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact := persons.Contact{ID: s.newID(), Name: input.Name, Number: input.Number}
	s.contacts = append(s.contacts, contact)
	return contact
}

// Replace overwrites name and number of the contact with id.
func (s *Store) Replace(id persons.ID, input persons.ContactInput) (persons.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return persons.Contact{}, false
	}
	s.contacts[i].Name = input.Name
	s.contacts[i].Number = input.Number
	return s.contacts[i], true
}

func (s *Store) Delete(id persons.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	return true
}

func (s *Store) indexOf(id persons.ID) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

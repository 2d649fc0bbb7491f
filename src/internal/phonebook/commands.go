package phonebook

import (
	"time"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// Command is a side effect requested by Controller.Update.
type Command interface {
	isCommand()
}

// FetchAll loads the full collection. Completes with ContactsFetched.
type FetchAll struct{}

// CreateContact adds a contact. Completes with ContactCreated.
type CreateContact struct {
	Input persons.ContactInput
}

// ReplaceContact overwrites the contact with ID. Completes with ContactReplaced.
type ReplaceContact struct {
	ID    persons.ID
	Input persons.ContactInput
}

// DeleteContact removes a contact. Completes with ContactDeleted.
type DeleteContact struct {
	Contact persons.Contact
}

// ScheduleClear asks for MessageExpired{Slot, ID} to be delivered after After.
// A newer ScheduleClear for the same slot supersedes it.
type ScheduleClear struct {
	Slot  Slot
	ID    uint64
	After time.Duration
}

func (FetchAll) isCommand()       {}
func (CreateContact) isCommand()  {}
func (ReplaceContact) isCommand() {}
func (DeleteContact) isCommand()  {}
func (ScheduleClear) isCommand()  {}

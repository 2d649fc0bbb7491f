package phonebook

import (
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// Event is an input to Controller.Update: either something the user did or
// the completion of a Command.
type Event interface {
	isEvent()
}

// Init starts the view and requests the first fetch.
type Init struct{}

type NameChanged struct{ Value string }

type NumberChanged struct{ Value string }

type SearchChanged struct{ Value string }

// Submitted is the form submission with the current name and number.
type Submitted struct{}

// DeleteRequested asks to delete the contact with ID. Nothing happens until
// the resulting confirmation is answered.
type DeleteRequested struct{ ID persons.ID }

// Confirmed accepts the pending confirmation.
type Confirmed struct{}

// Cancelled rejects the pending confirmation.
type Cancelled struct{}

// ContactsFetched is the outcome of FetchAll.
type ContactsFetched struct {
	Contacts []persons.Contact
	Err      error
}

// ContactCreated is the outcome of CreateContact.
type ContactCreated struct {
	Input   persons.ContactInput
	Contact *persons.Contact
	Err     error
}

// ContactReplaced is the outcome of ReplaceContact.
type ContactReplaced struct {
	ID    persons.ID
	Input persons.ContactInput
	Err   error
}

// ContactDeleted is the outcome of DeleteContact.
type ContactDeleted struct {
	Contact persons.Contact
	Err     error
}

// MessageExpired fires when the lifetime of message ID in Slot is over.
type MessageExpired struct {
	Slot Slot
	ID   uint64
}

func (Init) isEvent()            {}
func (NameChanged) isEvent()     {}
func (NumberChanged) isEvent()   {}
func (SearchChanged) isEvent()   {}
func (Submitted) isEvent()       {}
func (DeleteRequested) isEvent() {}
func (Confirmed) isEvent()       {}
func (Cancelled) isEvent()       {}
func (ContactsFetched) isEvent() {}
func (ContactCreated) isEvent()  {}
func (ContactReplaced) isEvent() {}
func (ContactDeleted) isEvent()  {}
func (MessageExpired) isEvent()  {}

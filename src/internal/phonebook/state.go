package phonebook

import (
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// Slot is one of the two positions a transient message can occupy.
type Slot int

const (
	SlotNotification Slot = iota
	SlotError
)

func (s Slot) String() string {
	switch s {
	case SlotNotification:
		return "notification"
	case SlotError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a transient text shown in a slot. ID grows with every message
// set on a State, so an expiry can tell whether it still refers to the
// message on screen.
type Message struct {
	ID   uint64
	Text string
}

// ConfirmationKind tells what a pending confirmation will do once accepted.
type ConfirmationKind int

const (
	ConfirmReplace ConfirmationKind = iota + 1
	ConfirmDelete
)

// Confirmation is a question waiting for a Confirmed or Cancelled event.
type Confirmation struct {
	Kind ConfirmationKind
	// Contact is the existing contact that will be replaced or deleted.
	Contact persons.Contact
	// Input holds the new values for a replace.
	Input  persons.ContactInput
	Prompt string
}

// State is the whole view state. The zero value is an empty, not yet loaded
// phonebook.
type State struct {
	// Contacts is the last known snapshot of the service collection.
	Contacts []persons.Contact
	// Loaded is set once the first fetch has succeeded.
	Loaded bool

	Name   string
	Number string
	Search string

	Notification *Message
	Error        *Message

	Pending *Confirmation

	lastMessageID uint64
}

// Visible returns the contacts matching the current search.
func (s State) Visible() []persons.Contact {
	return Filter(s.Contacts, s.Search)
}

// Find returns the contact whose name equals name exactly.
func (s State) Find(name string) (persons.Contact, bool) {
	for _, c := range s.Contacts {
		if c.Name == name {
			return c, true
		}
	}
	return persons.Contact{}, false
}

// FindByID returns the contact with the given id.
func (s State) FindByID(id persons.ID) (persons.Contact, bool) {
	for _, c := range s.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return persons.Contact{}, false
}

// Message returns the message currently shown in slot, or nil.
func (s State) Message(slot Slot) *Message {
	switch slot {
	case SlotNotification:
		return s.Notification
	case SlotError:
		return s.Error
	}
	return nil
}

func (s *State) setMessage(slot Slot, text string) Message {
	s.lastMessageID++
	msg := &Message{ID: s.lastMessageID, Text: text}
	switch slot {
	case SlotNotification:
		s.Notification = msg
	case SlotError:
		s.Error = msg
	}
	return *msg
}

func (s *State) clearMessage(slot Slot) {
	switch slot {
	case SlotNotification:
		s.Notification = nil
	case SlotError:
		s.Error = nil
	}
}

func (s *State) clearForm() {
	s.Name = ""
	s.Number = ""
}

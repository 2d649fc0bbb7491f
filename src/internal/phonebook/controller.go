package phonebook

import (
	"errors"
	"strings"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// DefaultMessageLifetime is how long a notification or error stays visible.
const DefaultMessageLifetime = 4 * time.Second

// Controller is the reducer of the phonebook view. It keeps no state of its
// own and is safe for concurrent use.
type Controller struct {
	MessageLifetime time.Duration
	Templates       *Templates
}

// NewController creates a controller. Zero lifetime and nil templates select
// the defaults.
func NewController(messageLifetime time.Duration, templates *Templates) *Controller {
	if messageLifetime <= 0 {
		messageLifetime = DefaultMessageLifetime
	}
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &Controller{
		MessageLifetime: messageLifetime,
		Templates:       templates,
	}
}

// Update applies ev to s and returns the next state with the commands to run.
// s is never modified in place.
func (c *Controller) Update(s State, ev Event) (State, []Command) {
	s.Contacts = cloneContacts(s.Contacts)

	switch ev := ev.(type) {
	case Init:
		return s, []Command{FetchAll{}}

	case NameChanged:
		s.Name = ev.Value
		return s, nil

	case NumberChanged:
		s.Number = ev.Value
		return s, nil

	case SearchChanged:
		s.Search = ev.Value
		return s, nil

	case Submitted:
		return c.submit(s)

	case DeleteRequested:
		return c.requestDelete(s, ev.ID)

	case Confirmed:
		return c.confirm(s)

	case Cancelled:
		return c.cancel(s)

	case ContactsFetched:
		if ev.Err != nil {
			log.Warnf("Failed to fetch contacts: %v", ev.Err)
			return c.show(s, SlotError, c.Templates.Render(TemplateFetchFailed, "", "", ev.Err))
		}
		s.Contacts = cloneContacts(ev.Contacts)
		if s.Contacts == nil {
			s.Contacts = []persons.Contact{}
		}
		s.Loaded = true
		return s, nil

	case ContactCreated:
		return c.created(s, ev)

	case ContactReplaced:
		return c.replaced(s, ev)

	case ContactDeleted:
		return c.deleted(s, ev)

	case MessageExpired:
		if msg := s.Message(ev.Slot); msg != nil && msg.ID == ev.ID {
			s.clearMessage(ev.Slot)
		}
		return s, nil
	}

	log.Warnf("Unhandled phonebook event %T", ev)
	return s, nil
}

func (c *Controller) submit(s State) (State, []Command) {
	if s.Pending != nil {
		return s, nil
	}

	input := persons.ContactInput{
		Name:   strings.TrimSpace(s.Name),
		Number: strings.TrimSpace(s.Number),
	}
	if input.Name == "" {
		return c.show(s, SlotError, c.Templates.Render(TemplateEmptyName, input.Name, input.Number, nil))
	}

	if existing, ok := s.Find(input.Name); ok {
		s.Pending = &Confirmation{
			Kind:    ConfirmReplace,
			Contact: existing,
			Input:   input,
			Prompt:  c.Templates.Render(TemplateConfirmReplace, input.Name, input.Number, nil),
		}
		return s, nil
	}

	s.clearForm()
	return s, []Command{CreateContact{Input: input}}
}

func (c *Controller) requestDelete(s State, id persons.ID) (State, []Command) {
	if s.Pending != nil {
		return s, nil
	}

	contact, ok := s.FindByID(id)
	if !ok {
		log.Debugf("Delete requested for unknown contact %s", id)
		return s, nil
	}

	s.Pending = &Confirmation{
		Kind:    ConfirmDelete,
		Contact: contact,
		Prompt:  c.Templates.Render(TemplateConfirmDelete, contact.Name, contact.Number, nil),
	}
	return s, nil
}

func (c *Controller) confirm(s State) (State, []Command) {
	pending := s.Pending
	if pending == nil {
		return s, nil
	}
	s.Pending = nil

	switch pending.Kind {
	case ConfirmReplace:
		s.clearForm()
		return s, []Command{ReplaceContact{ID: pending.Contact.ID, Input: pending.Input}}
	case ConfirmDelete:
		return s, []Command{DeleteContact{Contact: pending.Contact}}
	}
	return s, nil
}

func (c *Controller) cancel(s State) (State, []Command) {
	pending := s.Pending
	if pending == nil {
		return s, nil
	}
	s.Pending = nil

	if pending.Kind == ConfirmReplace {
		s.clearForm()
	}
	return s, nil
}

func (c *Controller) created(s State, ev ContactCreated) (State, []Command) {
	if ev.Err != nil {
		log.Warnf("Failed to create contact %q: %v", ev.Input.Name, ev.Err)
		return c.show(s, SlotError, c.Templates.Render(TemplateCreateFailed, ev.Input.Name, ev.Input.Number, ev.Err))
	}

	contact := persons.Contact{Name: ev.Input.Name, Number: ev.Input.Number}
	if ev.Contact != nil {
		contact = *ev.Contact
	}
	s.Contacts = append(s.Contacts, contact)

	return c.show(s, SlotNotification, c.Templates.Render(TemplateAdded, contact.Name, contact.Number, nil))
}

func (c *Controller) replaced(s State, ev ContactReplaced) (State, []Command) {
	if ev.Err != nil {
		log.Warnf("Failed to update contact %s: %v", ev.ID, ev.Err)

		key := TemplateUpdateFailed
		if errors.Is(ev.Err, persons.ErrNotFound) {
			key = TemplateAlreadyDeleted
		}
		s, cmds := c.show(s, SlotError, c.Templates.Render(key, ev.Input.Name, ev.Input.Number, ev.Err))
		return s, append(cmds, FetchAll{})
	}

	for i := range s.Contacts {
		if s.Contacts[i].ID == ev.ID {
			s.Contacts[i].Name = ev.Input.Name
			s.Contacts[i].Number = ev.Input.Number
		}
	}

	return c.show(s, SlotNotification, c.Templates.Render(TemplateUpdated, ev.Input.Name, ev.Input.Number, nil))
}

func (c *Controller) deleted(s State, ev ContactDeleted) (State, []Command) {
	var cmds []Command

	switch {
	case ev.Err == nil:
		s, cmds = c.show(s, SlotNotification, c.Templates.Render(TemplateDeleted, ev.Contact.Name, ev.Contact.Number, nil))
	case errors.Is(ev.Err, persons.ErrNotFound):
		log.Warnf("Contact %s was already deleted: %v", ev.Contact.ID, ev.Err)
		s, cmds = c.show(s, SlotError, c.Templates.Render(TemplateAlreadyDeleted, ev.Contact.Name, ev.Contact.Number, ev.Err))
	default:
		log.Warnf("Failed to delete contact %s: %v", ev.Contact.ID, ev.Err)
		s, cmds = c.show(s, SlotError, c.Templates.Render(TemplateDeleteFailed, ev.Contact.Name, ev.Contact.Number, ev.Err))
	}

	return s, append(cmds, FetchAll{})
}

func (c *Controller) show(s State, slot Slot, text string) (State, []Command) {
	msg := s.setMessage(slot, text)
	return s, []Command{ScheduleClear{Slot: slot, ID: msg.ID, After: c.MessageLifetime}}
}

func cloneContacts(contacts []persons.Contact) []persons.Contact {
	if contacts == nil {
		return nil
	}
	out := make([]persons.Contact, len(contacts))
	copy(out, contacts)
	return out
}

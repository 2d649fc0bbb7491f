package phonebook

import (
	"context"

	"github.com/maksimkurb/phonebook/src/internal/domain"
	"github.com/maksimkurb/phonebook/src/internal/log"
)

// Executor carries out remote commands against the contacts service.
type Executor struct {
	client domain.PersonsClient
}

func NewExecutor(client domain.PersonsClient) *Executor {
	return &Executor{client: client}
}

// Execute runs cmd and returns the event describing its outcome. Commands
// that do not talk to the service (ScheduleClear) return nil.
func (e *Executor) Execute(ctx context.Context, cmd Command) Event {
	log.Debugf("Executing %T", cmd)

	switch cmd := cmd.(type) {
	case FetchAll:
		contacts, err := e.client.GetAll(ctx)
		return ContactsFetched{Contacts: contacts, Err: err}

	case CreateContact:
		contact, err := e.client.Create(ctx, cmd.Input)
		return ContactCreated{Input: cmd.Input, Contact: contact, Err: err}

	case ReplaceContact:
		err := e.client.Update(ctx, cmd.ID, cmd.Input)
		return ContactReplaced{ID: cmd.ID, Input: cmd.Input, Err: err}

	case DeleteContact:
		err := e.client.Delete(ctx, cmd.Contact.ID)
		return ContactDeleted{Contact: cmd.Contact, Err: err}
	}

	return nil
}

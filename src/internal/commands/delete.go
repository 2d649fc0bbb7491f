package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/errors"
	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/persons"
	"github.com/maksimkurb/phonebook/src/internal/phonebook"
)

func CreateDeleteCommand() *DeleteCommand {
	dc := &DeleteCommand{
		fs: flag.NewFlagSet("delete", flag.ExitOnError),
	}

	dc.fs.StringVar(&dc.ContactName, "name", "", "Name of the contact to delete")
	dc.fs.StringVar(&dc.ID, "id", "", "Id of the contact to delete")
	dc.fs.BoolVar(&dc.Yes, "yes", false, "Delete without asking")

	return dc
}

type DeleteCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	ContactName string
	ID          string
	Yes         bool
}

func (d *DeleteCommand) Name() string {
	return d.fs.Name()
}

func (d *DeleteCommand) Init(args []string, ctx *AppContext) error {
	d.ctx = ctx

	if err := d.fs.Parse(args); err != nil {
		return err
	}

	if (d.ContactName == "") == (d.ID == "") {
		return errors.NewValidationError("exactly one of -name or -id must be given", nil)
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		d.cfg = cfg
	}

	return nil
}

func (d *DeleteCommand) Run() error {
	s, err := newCLISession(d.ctx, d.cfg)
	if err != nil {
		return err
	}

	bg := context.Background()
	if err := s.Dispatch(bg, phonebook.Init{}); err != nil {
		return err
	}
	if err := s.failure(); err != nil {
		return err
	}

	contact, err := d.target(s.State())
	if err != nil {
		return err
	}

	if err := s.Dispatch(bg, phonebook.DeleteRequested{ID: contact.ID}); err != nil {
		return err
	}

	pending := s.State().Pending
	if pending == nil {
		return errors.NewInternalError(fmt.Sprintf("no confirmation requested for %s", contact.Name), nil)
	}

	ev := answer(d.ctx, d.Yes, pending.Prompt)
	if _, cancelled := ev.(phonebook.Cancelled); cancelled {
		log.Infof("Nothing changed")
	}
	if err := s.Dispatch(bg, ev); err != nil {
		return err
	}

	return s.failure()
}

func (d *DeleteCommand) target(state phonebook.State) (persons.Contact, error) {
	if d.ID != "" {
		if c, ok := state.FindByID(persons.ID(d.ID)); ok {
			return c, nil
		}
		return persons.Contact{}, errors.NewNotFoundError(fmt.Sprintf("no contact with id %s", d.ID), nil)
	}

	if c, ok := state.Find(d.ContactName); ok {
		return c, nil
	}
	return persons.Contact{}, errors.NewNotFoundError(fmt.Sprintf("no contact named %q", d.ContactName), nil)
}

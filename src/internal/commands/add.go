package commands

import (
	"context"
	"flag"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/phonebook"
)

func CreateAddCommand() *AddCommand {
	ac := &AddCommand{
		fs: flag.NewFlagSet("add", flag.ExitOnError),
	}

	ac.fs.StringVar(&ac.ContactName, "name", "", "Contact name")
	ac.fs.StringVar(&ac.Number, "number", "", "Phone number")
	ac.fs.BoolVar(&ac.Yes, "yes", false, "Replace the number of an existing contact without asking")

	return ac
}

// AddCommand adds a contact, or replaces the number of a contact with the
// same name after confirmation.
type AddCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	ContactName string
	Number      string
	Yes         bool
}

func (a *AddCommand) Name() string {
	return a.fs.Name()
}

func (a *AddCommand) Init(args []string, ctx *AppContext) error {
	a.ctx = ctx

	if err := a.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		a.cfg = cfg
	}

	return nil
}

func (a *AddCommand) Run() error {
	s, err := newCLISession(a.ctx, a.cfg)
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

	for _, ev := range []phonebook.Event{
		phonebook.NameChanged{Value: a.ContactName},
		phonebook.NumberChanged{Value: a.Number},
		phonebook.Submitted{},
	} {
		if err := s.Dispatch(bg, ev); err != nil {
			return err
		}
	}

	if pending := s.State().Pending; pending != nil {
		ev := answer(a.ctx, a.Yes, pending.Prompt)
		if _, cancelled := ev.(phonebook.Cancelled); cancelled {
			log.Infof("Nothing changed")
		}
		if err := s.Dispatch(bg, ev); err != nil {
			return err
		}
	}

	return s.failure()
}

// answer returns the event answering a confirmation: yes when assumeYes is
// set, otherwise whatever the user types.
func answer(ctx *AppContext, assumeYes bool, prompt string) phonebook.Event {
	if assumeYes || confirm(ctx.stdin(), ctx.stdout(), prompt) {
		return phonebook.Confirmed{}
	}
	return phonebook.Cancelled{}
}

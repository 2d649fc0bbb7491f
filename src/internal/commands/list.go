package commands

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/maksimkurb/phonebook/src/internal/config"
	"github.com/maksimkurb/phonebook/src/internal/phonebook"
)

func CreateListCommand() *ListCommand {
	lc := &ListCommand{
		fs: flag.NewFlagSet("list", flag.ExitOnError),
	}

	lc.fs.StringVar(&lc.Search, "search", "", "Show only names matching this case-insensitive regular expression")

	return lc
}

type ListCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	cfg    *config.Config
	Search string
}

func (l *ListCommand) Name() string {
	return l.fs.Name()
}

func (l *ListCommand) Init(args []string, ctx *AppContext) error {
	l.ctx = ctx

	if err := l.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		l.cfg = cfg
	}

	return nil
}

func (l *ListCommand) Run() error {
	s, err := newCLISession(l.ctx, l.cfg)
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
	if err := s.Dispatch(bg, phonebook.SearchChanged{Value: l.Search}); err != nil {
		return err
	}

	w := tabwriter.NewWriter(l.ctx.stdout(), 0, 4, 2, ' ', 0)
	for _, c := range s.State().Visible() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Number)
	}
	return w.Flush()
}

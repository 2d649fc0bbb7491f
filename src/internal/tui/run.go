package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maksimkurb/phonebook/src/internal/phonebook"
)

// Run shows the phonebook screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, controller *phonebook.Controller, executor *phonebook.Executor, opts ...tea.ProgramOption) error {
	var program *tea.Program

	scheduler := phonebook.NewScheduler(func(ev phonebook.Event) {
		program.Send(EventMsg(ev))
	})
	defer scheduler.Stop()

	model := NewModel(ctx, controller, executor).WithScheduler(scheduler.Schedule)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program = tea.NewProgram(model, opts...)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

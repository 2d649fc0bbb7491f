package phonebook

import (
	"context"
)

// Session drives a Controller sequentially: every command is executed right
// away and its outcome dispatched before Dispatch returns. Messages are
// reported through OnMessage instead of being timed out.
type Session struct {
	controller *Controller
	executor   *Executor

	// OnMessage, if set, is called for every message set while dispatching.
	OnMessage func(slot Slot, msg Message)

	state State
}

func NewSession(controller *Controller, executor *Executor) *Session {
	return &Session{
		controller: controller,
		executor:   executor,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Dispatch feeds ev and every follow-up event to the controller.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	queue := []Event{ev}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := queue[0]
		queue = queue[1:]

		var cmds []Command
		s.state, cmds = s.controller.Update(s.state, next)

		for _, cmd := range cmds {
			if sc, ok := cmd.(ScheduleClear); ok {
				if s.OnMessage != nil {
					if msg := s.state.Message(sc.Slot); msg != nil && msg.ID == sc.ID {
						s.OnMessage(sc.Slot, *msg)
					}
				}
				continue
			}
			if result := s.executor.Execute(ctx, cmd); result != nil {
				queue = append(queue, result)
			}
		}
	}

	return nil
}

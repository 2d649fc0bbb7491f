// Package phonebook holds the view state of the phonebook and the logic that
// moves it forward.
//
// All state changes go through Controller.Update, which takes the current
// State and an Event and returns the next State together with the Commands
// that must be carried out. Commands are plain values: an Executor turns the
// remote ones into calls to the contacts service and feeds the outcome back as
// events, and a Scheduler turns ScheduleClear commands into MessageExpired
// events after the message lifetime.
//
// Typical flow:
//
//	user input -> Event -> Controller.Update -> (State, []Command)
//	Command -> Executor -> completion Event -> Controller.Update -> ...
//
// Session wires the three together for sequential drivers such as the CLI.
// The terminal UI does the same through bubbletea commands.
package phonebook

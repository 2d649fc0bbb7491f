// Package tui is the interactive terminal front end of the phonebook.
//
// Model adapts bubbletea messages to phonebook events and runs the commands
// returned by the controller as tea.Cmd values. Key bindings:
//
//	tab / shift+tab   move between search, name, number and the list
//	enter             submit the form (name or number field)
//	up / down         select a contact (list)
//	d / delete        delete the selected contact (list)
//	y / n             answer a confirmation
//	q / ctrl+c        quit
package tui

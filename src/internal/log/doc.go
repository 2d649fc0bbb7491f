// Package log provides simple leveled logging for phonebook.
//
// Messages are written with a short level prefix (DEBUG, INFO, WARN, ERROR).
// Debug messages are only shown in verbose mode.
//
// # Example Usage
//
//	log.Infof("Fetching contacts from %s", baseURL)
//	log.SetVerbose(true)
//	log.Debugf("PUT %s -> %d", url, status)
//
// The terminal UI owns stdout while it is running, so before starting it the
// caller redirects logs to a file:
//
//	f, _ := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
//	log.SetOutput(f)
//
// Writers configured with SetOutput receive every level and never get ANSI
// colours. Without a writer, errors go to stderr and everything else to stdout.
package log

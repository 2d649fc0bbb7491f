package persons

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maksimkurb/phonebook/src/internal/errors"
)

// DefaultBaseURL is the collection URL used when none is configured.
const DefaultBaseURL = "http://localhost:3001/persons/"

// ErrNotFound matches (via errors.Is) any error reporting a missing contact.
var ErrNotFound = errors.New(errors.ErrCodeNotFound, "contact not found")

// ID is an opaque contact identifier assigned by the service.
//
// Services in the wild use both JSON numbers and JSON strings for ids, so
// both are accepted. Ids that are canonical non-negative integers ("0", "12",
// not "007") are written back as numbers.
type ID string

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if isCanonicalInt(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*id = ""
	case string:
		*id = ID(value)
	case json.Number:
		*id = ID(value.String())
	default:
		return fmt.Errorf("invalid contact id: %s", strings.TrimSpace(string(b)))
	}
	return nil
}

func isCanonicalInt(s string) bool {
	if s == "" || (s[0] == '0' && len(s) > 1) {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Contact is a phonebook entry as stored by the service.
type Contact struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Input returns the writable fields of the contact.
func (c Contact) Input() ContactInput {
	return ContactInput{Name: c.Name, Number: c.Number}
}

// ContactInput is the request body for create and replace calls.
type ContactInput struct {
	Name   string `json:"name" validate:"required"`
	Number string `json:"number"`
}

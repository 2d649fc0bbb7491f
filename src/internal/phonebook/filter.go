package phonebook

import (
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// searchTimeout bounds a single name match, the syntax allows backtracking.
const searchTimeout = 100 * time.Millisecond

// searchMatcher matches names against one search string.
type searchMatcher struct {
	search string
	re     *regexp2.Regexp
	needle string
}

func (m *searchMatcher) match(name string) bool {
	if m.re == nil {
		return strings.Contains(strings.ToLower(name), m.needle)
	}
	ok, err := m.re.MatchString(name)
	return err == nil && ok
}

var (
	lastMatcherMu sync.Mutex
	lastMatcher   *searchMatcher
)

// matcherFor returns the matcher of search, reusing the last one compiled
// while the search text stays the same.
func matcherFor(search string) *searchMatcher {
	lastMatcherMu.Lock()
	defer lastMatcherMu.Unlock()

	if lastMatcher != nil && lastMatcher.search == search {
		return lastMatcher
	}

	m := &searchMatcher{search: search, needle: strings.ToLower(search)}
	if re, err := regexp2.Compile(search, regexp2.ECMAScript|regexp2.IgnoreCase); err == nil {
		re.MatchTimeout = searchTimeout
		m.re = re
	}
	lastMatcher = m
	return m
}

// Filter returns the contacts whose name matches search as a case-insensitive
// ECMAScript regular expression. An empty search returns contacts unchanged.
// A search that does not compile is matched as a case-insensitive literal
// substring.
func Filter(contacts []persons.Contact, search string) []persons.Contact {
	if search == "" {
		return contacts
	}

	m := matcherFor(search)

	filtered := make([]persons.Contact, 0, len(contacts))
	for _, c := range contacts {
		if m.match(c.Name) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

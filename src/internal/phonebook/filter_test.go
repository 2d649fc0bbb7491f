package phonebook

import (
	"testing"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

func TestFilter(t *testing.T) {
	contacts := []persons.Contact{
		{ID: "1", Name: "Arto Hellas", Number: "040-123456"},
		{ID: "2", Name: "Ada Lovelace", Number: "39-44-5323523"},
		{ID: "3", Name: "Dan Abramov", Number: "12-43-234345"},
		{ID: "4", Name: "Mary Poppendieck", Number: "39-23-6423122"},
		{ID: "5", Name: "Fan (a [b", Number: "1"},
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []persons.ID
	}{
		{name: "empty search", search: "", wantIDs: []persons.ID{"1", "2", "3", "4", "5"}},
		{name: "case insensitive", search: "ADA", wantIDs: []persons.ID{"2"}},
		{name: "substring", search: "ar", wantIDs: []persons.ID{"1", "4"}},
		{name: "regex anchor", search: "^d", wantIDs: []persons.ID{"3"}},
		{name: "regex alternation", search: "arto|mary", wantIDs: []persons.ID{"1", "4"}},
		{name: "no match", search: "zed", wantIDs: nil},
		{name: "invalid regex falls back to substring", search: "(a", wantIDs: []persons.ID{"5"}},
		{name: "invalid regex case insensitive", search: "N (A [", wantIDs: []persons.ID{"5"}},
		{name: "ecmascript class", search: `^\w+ \w+$`, wantIDs: []persons.ID{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(contacts, tt.search)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter(%q) returned %d contacts, want %d: %+v", tt.search, len(got), len(tt.wantIDs), got)
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tt.search, i, c.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestState_Visible(t *testing.T) {
	s := State{
		Contacts: []persons.Contact{{ID: "1", Name: "Ada"}, {ID: "2", Name: "Grace"}},
		Search:   "gr",
	}

	visible := s.Visible()
	if len(visible) != 1 || visible[0].Name != "Grace" {
		t.Errorf("Unexpected visible contacts %+v", visible)
	}
	if len(s.Contacts) != 2 {
		t.Error("Visible must not change the snapshot")
	}
}

func TestState_FindIsExact(t *testing.T) {
	s := State{Contacts: []persons.Contact{{ID: "1", Name: "Ada"}}}

	if _, ok := s.Find("ada"); ok {
		t.Error("Expected lookup to be case-sensitive")
	}
	if _, ok := s.Find("Ad"); ok {
		t.Error("Expected lookup to be exact")
	}
	if c, ok := s.Find("Ada"); !ok || c.ID != "1" {
		t.Errorf("Expected to find Ada, got %+v %v", c, ok)
	}
}

func TestFilter_ReusesCompiledSearch(t *testing.T) {
	first := matcherFor("^ad")
	if first.re == nil {
		t.Fatal("Expected ^ad to compile")
	}
	if again := matcherFor("^ad"); again != first {
		t.Error("Expected the compiled search to be reused for the same text")
	}

	other := matcherFor("^gr")
	if other == first {
		t.Error("Expected a new matcher for a different search")
	}
	if matcherFor("^gr") != other {
		t.Error("Expected the latest search to be cached")
	}

	if fallback := matcherFor("(a"); fallback.re != nil || !fallback.match("Fan (A") {
		t.Error("Expected an invalid pattern to fall back to substring matching")
	}
}

package phonebook

import (
	"context"
	"testing"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/errors"
	"github.com/maksimkurb/phonebook/src/internal/mocks"
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

func newTestSession(client *mocks.MockPersonsClient) *Session {
	return NewSession(NewController(time.Second, nil), NewExecutor(client))
}

func dispatchAll(t *testing.T, s *Session, events ...Event) {
	t.Helper()
	for _, ev := range events {
		if err := s.Dispatch(context.Background(), ev); err != nil {
			t.Fatalf("Dispatch(%T) error = %v", ev, err)
		}
	}
}

func TestSession_ReplaceExistingNumber(t *testing.T) {
	client := mocks.NewMockPersonsClientWithContacts(persons.Contact{ID: "1", Name: "Ada", Number: "1"})
	s := newTestSession(client)

	dispatchAll(t, s,
		Init{},
		NameChanged{Value: "Ada"},
		NumberChanged{Value: "2"},
		Submitted{},
		Confirmed{},
	)

	updates := client.CallsTo("Update")
	if len(updates) != 1 {
		t.Fatalf("Expected exactly one update, got %d", len(updates))
	}
	if updates[0].ID != "1" || updates[0].Input != (persons.ContactInput{Name: "Ada", Number: "2"}) {
		t.Errorf("Unexpected update call %+v", updates[0])
	}
	if len(client.CallsTo("Create")) != 0 {
		t.Error("Expected no create call")
	}

	state := s.State()
	if len(state.Contacts) != 1 || state.Contacts[0].Number != "2" {
		t.Errorf("Expected collection size unchanged with new number, got %+v", state.Contacts)
	}
}

func TestSession_CreateUniqueName(t *testing.T) {
	client := mocks.NewMockPersonsClientWithContacts(persons.Contact{ID: "1", Name: "Ada", Number: "1"})
	s := newTestSession(client)

	var messages []string
	s.OnMessage = func(slot Slot, msg Message) {
		messages = append(messages, slot.String()+": "+msg.Text)
	}

	dispatchAll(t, s,
		Init{},
		NameChanged{Value: "Grace"},
		NumberChanged{Value: "3"},
		Submitted{},
	)

	if len(client.CallsTo("Create")) != 1 || len(client.CallsTo("Update")) != 0 {
		t.Errorf("Expected one create and no update, got %+v", client.Calls())
	}
	state := s.State()
	if len(state.Contacts) != 2 || state.Contacts[1].Name != "Grace" || state.Contacts[1].ID != "2" {
		t.Errorf("Expected Grace to be appended, got %+v", state.Contacts)
	}
	if len(messages) != 1 || messages[0] != "notification: Grace has been added to the phonebook" {
		t.Errorf("Unexpected messages %v", messages)
	}
}

func TestSession_DeleteRefetches(t *testing.T) {
	client := mocks.NewMockPersonsClientWithContacts(
		persons.Contact{ID: "1", Name: "Ada", Number: "1"},
		persons.Contact{ID: "2", Name: "Grace", Number: "2"},
	)
	s := newTestSession(client)

	dispatchAll(t, s, Init{}, DeleteRequested{ID: "1"}, Confirmed{})

	calls := client.Calls()
	methods := make([]string, 0, len(calls))
	for _, c := range calls {
		methods = append(methods, c.Method)
	}
	want := []string{"GetAll", "Delete", "GetAll"}
	if len(methods) != len(want) {
		t.Fatalf("Expected calls %v, got %v", want, methods)
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Fatalf("Expected calls %v, got %v", want, methods)
		}
	}

	if _, ok := s.State().FindByID("1"); ok {
		t.Error("Expected deleted contact to be absent after re-fetch")
	}
}

func TestSession_UpdateFailureRefetches(t *testing.T) {
	client := mocks.NewMockPersonsClientWithContacts(persons.Contact{ID: "1", Name: "Ada", Number: "1"})
	s := newTestSession(client)

	dispatchAll(t, s, Init{}, NameChanged{Value: "Ada"}, NumberChanged{Value: "2"}, Submitted{})

	// Someone else removed Ada in the meantime.
	if err := client.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	dispatchAll(t, s, Confirmed{})

	state := s.State()
	if state.Error == nil || state.Error.Text != "Ada has already been deleted from server" {
		t.Errorf("Unexpected error message %+v", state.Error)
	}
	if len(state.Contacts) != 0 {
		t.Errorf("Expected re-fetched empty collection, got %+v", state.Contacts)
	}
	if len(client.CallsTo("GetAll")) != 2 {
		t.Errorf("Expected a re-fetch after failed update, got %d fetches", len(client.CallsTo("GetAll")))
	}
}

func TestSession_FetchFailure(t *testing.T) {
	client := mocks.NewMockPersonsClient()
	client.GetAllFunc = func(ctx context.Context) ([]persons.Contact, error) {
		return nil, errors.NewRemoteError("connection refused", nil)
	}
	s := newTestSession(client)

	dispatchAll(t, s, Init{})

	state := s.State()
	if state.Loaded {
		t.Error("Expected state not to be loaded")
	}
	if state.Error == nil {
		t.Error("Expected fetch error message")
	}
}

func TestSession_CancelledContext(t *testing.T) {
	s := newTestSession(mocks.NewMockPersonsClient())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Dispatch(ctx, Init{}); err == nil {
		t.Error("Expected context error")
	}
}

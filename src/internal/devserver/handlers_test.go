package devserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maksimkurb/phonebook/src/internal/persons"
)

func newTestRouter(seed ...persons.Contact) (http.Handler, *Store) {
	store := NewStore(seed...)
	return NewRouter(store), store
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListPersons(t *testing.T) {
	h, _ := newTestRouter(persons.Contact{ID: "1", Name: "Ada", Number: "1"})

	w := doRequest(t, h, http.MethodGet, "/persons/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `[{"id":1,"name":"Ada","number":"1"}]` {
		t.Errorf("Unexpected body %s", w.Body.String())
	}
}

func TestListPersons_Empty(t *testing.T) {
	h, _ := newTestRouter()

	w := doRequest(t, h, http.MethodGet, "/persons/", "")

	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", w.Body.String())
	}
}

func TestCreatePerson(t *testing.T) {
	h, store := newTestRouter()

	w := doRequest(t, h, http.MethodPost, "/persons/", `{"name":"Grace","number":"2"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created persons.Contact
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.ID.IsZero() || created.Name != "Grace" || created.Number != "2" {
		t.Errorf("Unexpected created contact %+v", created)
	}
	if got, ok := store.Get(created.ID); !ok || got != created {
		t.Errorf("Expected contact in store, got %+v", got)
	}
}

func TestCreatePerson_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantCode    ErrorCode
	}{
		{name: "missing name", body: `{"number":"2"}`, wantCode: ErrCodeValidationFailed},
		{name: "empty body object", body: `{}`, wantCode: ErrCodeValidationFailed},
		{name: "malformed json", body: `{"name":`, wantCode: ErrCodeInvalidRequest},
		{name: "wrong content type", body: `name=Grace`, contentType: "application/x-www-form-urlencoded", wantCode: ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestRouter()

			req := httptest.NewRequest(http.MethodPost, "/persons/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			} else {
				req.Header.Set("Content-Type", "application/json; charset=utf-8")
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode error: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, resp.Error.Code)
			}
			if len(store.List()) != 0 {
				t.Error("Expected nothing to be stored")
			}
		})
	}
}

func TestCreatePerson_ValidationDetails(t *testing.T) {
	h, _ := newTestRouter()

	w := doRequest(t, h, http.MethodPost, "/persons/", `{"number":"2"}`)

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if resp.Error.Details["name"] != "required" {
		t.Errorf("Expected name detail, got %v", resp.Error.Details)
	}
	if _, ok := resp.Error.Details["number"]; ok {
		t.Errorf("Expected number to be optional, got %v", resp.Error.Details)
	}
}

func TestCreatePerson_EmptyNumber(t *testing.T) {
	h, store := newTestRouter()

	w := doRequest(t, h, http.MethodPost, "/persons/", `{"name":"Bob","number":""}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if got := store.List(); len(got) != 1 || got[0].Name != "Bob" || got[0].Number != "" {
		t.Errorf("Unexpected store contents %+v", got)
	}
}

func TestListPersons_IDTypes(t *testing.T) {
	h, _ := newTestRouter(
		persons.Contact{ID: "007", Name: "James", Number: "7"},
		persons.Contact{ID: "0", Name: "Zero", Number: "0"},
		persons.Contact{ID: "12", Name: "Twelve", Number: "12"},
	)

	w := doRequest(t, h, http.MethodGet, "/persons/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	want := `[{"id":"007","name":"James","number":"7"},{"id":0,"name":"Zero","number":"0"},{"id":12,"name":"Twelve","number":"12"}]`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("Unexpected body %s", got)
	}
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected a JSON error body, got %q", w.Body.String())
	}
	if resp.Error.Code != ErrCodeInternalError {
		t.Errorf("Expected code %s, got %s", ErrCodeInternalError, resp.Error.Code)
	}
}

func TestGetPerson(t *testing.T) {
	h, _ := newTestRouter(persons.Contact{ID: "abc", Name: "Ada", Number: "1"})

	w := doRequest(t, h, http.MethodGet, "/persons/abc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	w = doRequest(t, h, http.MethodGet, "/persons/zzz", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestReplacePerson(t *testing.T) {
	h, store := newTestRouter(persons.Contact{ID: "1", Name: "Ada", Number: "1"})

	w := doRequest(t, h, http.MethodPut, "/persons/1", `{"name":"Ada","number":"2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if c, _ := store.Get("1"); c.Number != "2" {
		t.Errorf("Expected number to be replaced, got %+v", c)
	}

	w = doRequest(t, h, http.MethodPut, "/persons/9", `{"name":"Ada","number":"2"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDeletePerson(t *testing.T) {
	h, store := newTestRouter(persons.Contact{ID: "1", Name: "Ada", Number: "1"})

	w := doRequest(t, h, http.MethodDelete, "/persons/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	if len(store.List()) != 0 {
		t.Error("Expected contact to be deleted")
	}

	w = doRequest(t, h, http.MethodDelete, "/persons/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", w.Code)
	}
}

func TestHealthAndCORS(t *testing.T) {
	h, _ := newTestRouter()

	w := doRequest(t, h, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header")
	}

	w = doRequest(t, h, http.MethodOptions, "/persons/", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected preflight status 204, got %d", w.Code)
	}
}

func TestMetrics(t *testing.T) {
	h, _ := newTestRouter(persons.Contact{ID: "1", Name: "Ada", Number: "1"})

	doRequest(t, h, http.MethodGet, "/persons/", "")
	doRequest(t, h, http.MethodGet, "/persons/", "")
	doRequest(t, h, http.MethodDelete, "/persons/9", "")

	w := doRequest(t, h, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`http_requests_total{method="GET",path="/persons",status="200"} 2`,
		`http_requests_total{method="DELETE",path="/persons/{id}",status="404"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in metrics output:\n%s", want, body)
		}
	}
}

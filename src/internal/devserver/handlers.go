package devserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/persons"
)

// Handler serves the persons collection from a Store.
type Handler struct {
	store    *Store
	validate *validator.Validate
}

func NewHandler(store *Store) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{store: store, validate: v}
}

// ListPersons returns the whole collection as a JSON array.
func (h *Handler) ListPersons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id := persons.ID(chi.URLParam(r, "id"))

	contact, ok := h.store.Get(id)
	if !ok {
		WriteNotFound(w, "Contact "+id.String())
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	contact := h.store.Create(input)
	log.Debugf("Created contact %s (%s)", contact.ID, contact.Name)
	writeJSON(w, http.StatusCreated, contact)
}

func (h *Handler) ReplacePerson(w http.ResponseWriter, r *http.Request) {
	id := persons.ID(chi.URLParam(r, "id"))

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	contact, ok := h.store.Replace(id, input)
	if !ok {
		WriteNotFound(w, "Contact "+id.String())
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id := persons.ID(chi.URLParam(r, "id"))

	if !h.store.Delete(id) {
		WriteNotFound(w, "Contact "+id.String())
		return
	}
	writeNoContent(w)
}

// Health reports that the service is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (persons.ContactInput, bool) {
	var input persons.ContactInput
	if err := decodeJSON(r, &input); err != nil {
		WriteInvalidRequest(w, "Invalid JSON body: "+err.Error())
		return input, false
	}

	if err := h.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make(map[string]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
			WriteValidationError(w, "Contact is invalid", details)
			return input, false
		}
		WriteInvalidRequest(w, err.Error())
		return input, false
	}

	return input, true
}

// writeJSON writes a JSON response with the given status code and data.
// Encoding happens before the header is sent so a failure can still be
// reported as a 500.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.Errorf("Failed to encode response: %v", err)
		WriteInternalError(w, "Failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

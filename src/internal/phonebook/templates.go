package phonebook

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/phonebook/src/internal/config"
)

// Template keys. Each key is also the TOML key under [messages].
const (
	TemplateAdded          = "added"
	TemplateUpdated        = "updated"
	TemplateDeleted        = "deleted"
	TemplateAlreadyDeleted = "already_deleted"
	TemplateUpdateFailed   = "update_failed"
	TemplateCreateFailed   = "create_failed"
	TemplateDeleteFailed   = "delete_failed"
	TemplateFetchFailed    = "fetch_failed"
	TemplateEmptyName      = "empty_name"
	TemplateConfirmReplace = "confirm_replace"
	TemplateConfirmDelete  = "confirm_delete"
)

var defaultTemplates = map[string]string{
	TemplateAdded:          "{{name}} has been added to the phonebook",
	TemplateUpdated:        "The number for {{name}} has been updated to {{number}}",
	TemplateDeleted:        "{{name}} has been deleted from the phonebook",
	TemplateAlreadyDeleted: "{{name}} has already been deleted from server",
	TemplateUpdateFailed:   "Could not update {{name}}: {{error}}",
	TemplateCreateFailed:   "Could not add {{name}}: {{error}}",
	TemplateDeleteFailed:   "Could not delete {{name}}: {{error}}",
	TemplateFetchFailed:    "Could not load contacts: {{error}}",
	TemplateEmptyName:      "Name must not be empty",
	TemplateConfirmReplace: "{{name}} already exists, replace old number with new one?",
	TemplateConfirmDelete:  "Are you sure you want to delete {{name}}?",
}

// Templates renders the user-visible texts. Placeholders are {{name}},
// {{number}} and {{error}}; unknown placeholders render as empty strings.
type Templates struct {
	templates map[string]*fasttemplate.Template
}

// DefaultTemplates returns the built-in texts.
func DefaultTemplates() *Templates {
	t, err := NewTemplates(nil)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTemplates builds the texts from cfg. Empty or missing entries keep the
// built-in text.
func NewTemplates(cfg *config.MessagesConfig) (*Templates, error) {
	sources := make(map[string]string, len(defaultTemplates))
	for key, text := range defaultTemplates {
		sources[key] = text
	}

	if cfg != nil {
		overrides := map[string]string{
			TemplateAdded:          cfg.Added,
			TemplateUpdated:        cfg.Updated,
			TemplateDeleted:        cfg.Deleted,
			TemplateAlreadyDeleted: cfg.AlreadyDeleted,
			TemplateUpdateFailed:   cfg.UpdateFailed,
			TemplateCreateFailed:   cfg.CreateFailed,
			TemplateDeleteFailed:   cfg.DeleteFailed,
			TemplateFetchFailed:    cfg.FetchFailed,
			TemplateEmptyName:      cfg.EmptyName,
			TemplateConfirmReplace: cfg.ConfirmReplace,
			TemplateConfirmDelete:  cfg.ConfirmDelete,
		}
		for key, text := range overrides {
			if text != "" {
				sources[key] = text
			}
		}
	}

	t := &Templates{templates: make(map[string]*fasttemplate.Template, len(sources))}
	for key, text := range sources {
		tpl, err := fasttemplate.NewTemplate(text, "{{", "}}")
		if err != nil {
			return nil, fmt.Errorf("invalid %s message template: %v", key, err)
		}
		t.templates[key] = tpl
	}
	return t, nil
}

// Render executes the template key with the given contact fields and error.
func (t *Templates) Render(key string, name, number string, err error) string {
	tpl, ok := t.templates[key]
	if !ok {
		return key
	}

	errText := ""
	if err != nil {
		errText = err.Error()
	}

	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		switch strings.TrimSpace(tag) {
		case "name":
			return w.Write([]byte(name))
		case "number":
			return w.Write([]byte(number))
		case "error":
			return w.Write([]byte(errText))
		}
		return 0, nil
	})
}

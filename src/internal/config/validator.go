package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.Remote == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "remote",
			Message:   "configuration must contain 'remote' section",
		})
		return validationErrors
	}

	sections := []struct {
		name  string
		value interface{}
	}{
		{name: "remote", value: c.Remote},
		{name: "ui", value: c.UI},
		{name: "log", value: c.Log},
		{name: "messages", value: c.Messages},
		{name: "dev_server", value: c.DevServer},
	}

	for _, section := range sections {
		if isNilSection(section.value) {
			continue
		}
		if err := validate.Struct(section.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, section.name)...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func isNilSection(v interface{}) bool {
	switch s := v.(type) {
	case *RemoteConfig:
		return s == nil
	case *UIConfig:
		return s == nil
	case *LogConfig:
		return s == nil
	case *MessagesConfig:
		return s == nil
	case *DevServerConfig:
		return s == nil
	}
	return v == nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

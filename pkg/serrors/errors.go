package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Base is an error with a machine-readable code and an optional field tag
// localizing it to a single form input.
type Base struct {
	Code    string
	Message string
	Field   string
}

func (e *Base) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, message, field string) *Base {
	return &Base{Code: code, Message: message, Field: field}
}

// ValidationError describes a single failed field check. MessageID points at
// the localized message for the field/rule pair.
type ValidationError struct {
	Field     string
	Rule      string
	MessageID string
}

type ValidationErrors map[string]*ValidationError

// ProcessValidatorErrors maps validator failures to ValidationErrors keyed by
// struct field name. fieldKey yields the locale prefix for a field, e.g.
// "Driver.Fields.DriverID"; the rule tag is appended to form the message ID.
func ProcessValidatorErrors(
	errs validator.ValidationErrors,
	fieldKey func(field string) string,
) map[string]*ValidationError {
	out := make(map[string]*ValidationError, len(errs))
	for _, err := range errs {
		field := err.Field()
		key := fieldKey(field)
		if key == "" {
			key = "ValidationErrors.Unknown"
			out[field] = &ValidationError{Field: field, Rule: err.Tag(), MessageID: key}
			continue
		}
		out[field] = &ValidationError{
			Field:     field,
			Rule:      err.Tag(),
			MessageID: fmt.Sprintf("%s.%s", key, err.Tag()),
		}
	}
	return out
}

// LocalizeValidationErrors renders each validation error through the
// localizer. Missing messages fall back to a generic invalid-value text.
func LocalizeValidationErrors(errs ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		msg, localizeErr := l.Localize(&i18n.LocalizeConfig{MessageID: err.MessageID})
		if localizeErr != nil || msg == "" {
			msg, localizeErr = l.Localize(&i18n.LocalizeConfig{MessageID: "ValidationErrors.Invalid"})
			if localizeErr != nil || msg == "" {
				msg = "Invalid value."
			}
		}
		out[field] = msg
	}
	return out
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalid = errors.New("invalid")

// FieldError reports a single failed check against one field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError accumulates field errors so callers can surface every
// problem at once instead of stopping at the first.
type ValidationError struct {
	Items []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed:\n")
	for _, item := range e.Items {
		b.WriteString(" - ")
		b.WriteString(item.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) AddAll(items []FieldError) {
	e.Items = append(e.Items, items...)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e ValidationError) HasAny() bool {
	return len(e.Items) > 0
}

// Fields lists the distinct field names that failed, in first-seen order.
func (e ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(e.Items))
	var out []string
	for _, item := range e.Items {
		if _, ok := seen[item.Field]; ok {
			continue
		}
		seen[item.Field] = struct{}{}
		out = append(out, item.Field)
	}
	return out
}

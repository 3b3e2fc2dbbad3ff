package domain

import (
	"sort"
	"strings"
)

// FieldErrors maps a request field to the messages describing why it was rejected.
// It doubles as an error so workflow steps can return it like any other failure.
type FieldErrors map[string][]string

func NewFieldError(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge appends every message of other into e.
func (e FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], ", "))
	}

	return strings.Join(parts, "; ")
}

package shared

import (
	"fmt"
	"sort"
	"strings"
)

// Notification accumulates validation errors keyed by field so a caller
// building a form sees every problem at once instead of one at a time.
type Notification struct {
	errors map[string][]string
}

func NewNotification() *Notification {
	return &Notification{errors: make(map[string][]string)}
}

func (n *Notification) AddError(field, message string) {
	n.errors[field] = append(n.errors[field], message)
}

func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

func (n *Notification) HasField(field string) bool {
	return len(n.errors[field]) > 0
}

// Errors returns a copy of the accumulated field -> messages report.
func (n *Notification) Errors() map[string][]string {
	out := make(map[string][]string, len(n.errors))
	for k, v := range n.errors {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (n *Notification) Merge(other *Notification) {
	if other == nil {
		return
	}
	for field, messages := range other.errors {
		for _, msg := range messages {
			n.AddError(field, msg)
		}
	}
}

// Err returns a ValidationError carrying the report, or nil when clean.
func (n *Notification) Err() error {
	if !n.HasErrors() {
		return nil
	}
	return &ValidationError{Report: n.Errors()}
}

// ValidationError is the accumulated (collect-all) failure class.
// Maps to a 400-equivalent outcome.
type ValidationError struct {
	Report map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Report))
	for f := range e.Report {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// ConflictError is a scheduling overlap: data-dependent, not structural.
// Maps to a 409-equivalent outcome.
type ConflictError struct {
	Report map[string][]string
}

func (e *ConflictError) Error() string {
	return "scheduling conflict"
}

// NotFoundError references an entity id that does not exist.
// Maps to a 404-equivalent outcome.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Package form models an input form as an ordered set of named fields, each
// with a raw value and its validators. Submitting a form runs every
// validator and yields a Result; the caller invokes the store operation only
// when the result is valid.
package form

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// Rule validates a raw field value. It returns the user-facing message and
// false when the value is rejected.
type Rule func(value string) (string, bool)

// Field is one named input of a form.
type Field struct {
	Name  string
	Label string
	Value string
	Rules []Rule
}

// Form is an ordered set of fields.
type Form struct {
	Fields []*Field
}

// Field returns the field with the given name, or nil.
func (f *Form) Field(name string) *Field {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd
		}
	}
	return nil
}

// Value returns the trimmed value of the named field.
func (f *Form) Value(name string) string {
	if fd := f.Field(name); fd != nil {
		return strings.TrimSpace(fd.Value)
	}
	return ""
}

// Set assigns the raw value of the named field. Unknown names are ignored.
func (f *Form) Set(name, value string) {
	if fd := f.Field(name); fd != nil {
		fd.Value = value
	}
}

// Values returns the raw values keyed by field name.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, fd := range f.Fields {
		out[fd.Name] = fd.Value
	}
	return out
}

// Validate runs the rules of every field. Only the first failing rule of a
// field is reported.
func (f *Form) Validate() Result {
	var res Result
	for _, fd := range f.Fields {
		value := strings.TrimSpace(fd.Value)
		for _, rule := range fd.Rules {
			if msg, ok := rule(value); !ok {
				res.Errors = append(res.Errors, FieldError{Field: fd.Name, Message: msg})
				break
			}
		}
	}
	return res
}

// FieldError is a failed validation for one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a form.
type Result struct {
	Errors []FieldError
}

// Valid reports whether every field passed.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Message returns the error message for field, or "".
func (r Result) Message(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Err returns a *ValidationError when the result is invalid, else nil.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	fields := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		fields[e.Field] = e.Message
	}
	return &ValidationError{Fields: fields}
}

// ValidationError carries per-field messages across API boundaries.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Required rejects blank values.
func Required(msg string) Rule {
	return func(value string) (string, bool) {
		return msg, value != ""
	}
}

// NonNegativeNumber rejects values that are not numbers or are below zero.
func NonNegativeNumber(msg string) Rule {
	return func(value string) (string, bool) {
		v, err := parseNumber(value)
		return msg, err == nil && v >= 0
	}
}

// OneOf rejects values outside allowed.
func OneOf(allowed []string, msg string) Rule {
	return func(value string) (string, bool) {
		return msg, slices.Contains(allowed, value)
	}
}

// Date rejects values that are not ISO calendar dates (YYYY-MM-DD).
func Date(msg string) Rule {
	return func(value string) (string, bool) {
		_, err := civil.ParseDate(value)
		return msg, err == nil
	}
}

func parseNumber(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %s", value)
	}
	return v, nil
}

package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// Invocation is the contract every generation tool implements: a field
// schema, a local validation step, the request body it sends and the
// operation it is sent to.
type Invocation interface {
	// Operation is the API operation name, e.g. "generate-logo".
	Operation() string
	// Schema lists the form fields in display order.
	Schema() []FieldSpec
	// Validate checks required fields. It is pure and must run before any request.
	Validate(fields Fields) error
	// Body builds the JSON request body from validated fields.
	Body(fields Fields) map[string]any
	// FallbackMessage is shown when a request fails without a server detail.
	FallbackMessage() string
}

// ValidationError is a local, user-facing validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Requirement fails validation with Message when any of Fields is empty.
type Requirement struct {
	Fields  []string
	Message string
}

// formSpec is the configuration object behind each tool.
type formSpec struct {
	operation string
	fields    []FieldSpec
	rules     []Requirement
	fallback  string
	shape     func(fields Fields, body map[string]any)
}

func (s *formSpec) Operation() string       { return s.operation }
func (s *formSpec) Schema() []FieldSpec     { return s.fields }
func (s *formSpec) FallbackMessage() string { return s.fallback }

func (s *formSpec) Validate(fields Fields) error {
	for _, rule := range s.rules {
		for _, name := range rule.Fields {
			if fields.Empty(name) {
				return &ValidationError{Message: rule.Message}
			}
		}
	}

	for _, f := range s.fields {
		if !f.Bounded() {
			continue
		}
		n, ok := fields.Number(f.Name)
		if !ok {
			continue
		}
		if n < f.Min || n > f.Max {
			return &ValidationError{Message: fmt.Sprintf("%s must be between %s and %s", f.Label, formatNumber(f.Min), formatNumber(f.Max))}
		}
	}
	return nil
}

// Body includes lists and numbers always and strings only when non-blank,
// so optional text fields are omitted rather than sent empty.
func (s *formSpec) Body(fields Fields) map[string]any {
	body := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		v, ok := fields[f.Name]
		if !ok || v == nil {
			v = f.Default
		}
		switch val := v.(type) {
		case nil:
			if f.Kind == KindList || f.Kind == KindMultiChoice {
				body[f.Name] = []string{}
			}
		case string:
			if trimmed := strings.TrimSpace(val); trimmed != "" {
				body[f.Name] = trimmed
			}
		case []string:
			body[f.Name] = append([]string{}, val...)
		default:
			body[f.Name] = val
		}
	}
	if s.shape != nil {
		s.shape(fields, body)
	}
	return body
}

// Defaults returns the initial field values of inv.
func Defaults(inv Invocation) Fields {
	out := make(Fields)
	for _, f := range inv.Schema() {
		switch d := f.Default.(type) {
		case nil:
			switch f.Kind {
			case KindList, KindMultiChoice:
				out[f.Name] = []string{}
			case KindNumber:
			default:
				out[f.Name] = ""
			}
		case []string:
			out[f.Name] = append([]string{}, d...)
		default:
			out[f.Name] = d
		}
	}
	return out
}

// FieldByName finds the schema entry for name.
func FieldByName(inv Invocation, name string) (FieldSpec, bool) {
	for _, f := range inv.Schema() {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

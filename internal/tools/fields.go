package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldKind is the input control a field is collected with.
type FieldKind int

const (
	KindText FieldKind = iota
	KindTextArea
	KindChoice
	KindMultiChoice
	KindNumber
	KindList // comma separated free text, sent as a string array
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextArea:
		return "textarea"
	case KindChoice:
		return "choice"
	case KindMultiChoice:
		return "multichoice"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Option is one selectable value of a choice field.
type Option struct {
	Value string
	Label string
}

// FieldSpec describes one form field and the request key it is sent as.
type FieldSpec struct {
	Name        string
	Label       string
	Kind        FieldKind
	Placeholder string
	Default     any
	Options     []Option
	Min, Max    float64 // KindNumber bounds; both zero means unbounded
	Step        float64
	Hidden      bool
}

// Bounded reports whether the number field carries a range.
func (f FieldSpec) Bounded() bool {
	return f.Kind == KindNumber && (f.Min != 0 || f.Max != 0)
}

// OptionLabel returns the label for value, or value itself.
func (f FieldSpec) OptionLabel(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Coerce converts raw input (typed or textual) to the value type of the field:
// string for text and choice fields, float64 for numbers, []string for lists.
func (f FieldSpec) Coerce(v any) (any, error) {
	switch f.Kind {
	case KindNumber:
		switch n := v.(type) {
		case nil:
			return f.Default, nil
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case string:
			s := strings.TrimSpace(n)
			if s == "" {
				return f.Default, nil
			}
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", f.Label)
			}
			return parsed, nil
		}
	case KindList, KindMultiChoice:
		switch l := v.(type) {
		case nil:
			return []string{}, nil
		case []string:
			return cleanList(l), nil
		case []any:
			out := make([]string, 0, len(l))
			for _, item := range l {
				out = append(out, fmt.Sprint(item))
			}
			return cleanList(out), nil
		case string:
			return SplitList(l), nil
		}
	default:
		switch s := v.(type) {
		case nil:
			return "", nil
		case string:
			return s, nil
		case fmt.Stringer:
			return s.String(), nil
		case float64, int, bool:
			return fmt.Sprint(s), nil
		}
	}
	return nil, fmt.Errorf("unsupported value %T for %s", v, f.Label)
}

// SplitList splits comma separated input, dropping blanks.
func SplitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Fields maps field names to their current values.
type Fields map[string]any

// Clone returns a deep copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if l, ok := v.([]string); ok {
			v = append([]string(nil), l...)
		}
		out[k] = v
	}
	return out
}

// String returns the string value of name.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Strings returns the list value of name.
func (f Fields) Strings(name string) []string {
	l, _ := f[name].([]string)
	return l
}

// Number returns the numeric value of name.
func (f Fields) Number(name string) (float64, bool) {
	n, ok := f[name].(float64)
	return n, ok
}

// Empty reports whether name holds no usable value.
func (f Fields) Empty(name string) bool {
	switch v := f[name].(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

// Display renders the value of name for echoing back into a form control.
func (f Fields) Display(name string) string {
	switch v := f[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Has reports whether the list value of name contains value.
func (f Fields) Has(name, value string) bool {
	for _, v := range f.Strings(name) {
		if v == value {
			return true
		}
	}
	return false
}

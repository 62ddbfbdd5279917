package tools

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lotayaai/lotaya-io/pkg/sdk"
	sdkerrors "github.com/lotayaai/lotaya-io/pkg/sdk/errors"
)

// Status is the lifecycle position of a form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrInFlight rejects a submit, edit or reset while a request is pending.
	ErrInFlight = errors.New("a request is already in flight")
	// ErrResultShown rejects edits and submits while a result is displayed.
	ErrResultShown = errors.New("result is shown; use try another")
	// ErrDestroyed rejects any use of a form whose modal has closed.
	ErrDestroyed = errors.New("form has been destroyed")
	// ErrUnknownField rejects SetField for a name outside the schema.
	ErrUnknownField = errors.New("unknown field")
)

// Attempt is a validated submission ready to be sent.
type Attempt struct {
	Token     uint64
	Operation string
	Body      map[string]any
}

// Snapshot is a point-in-time copy of a FormState.
type Snapshot struct {
	Tool         string
	Status       Status
	Fields       Fields
	Result       sdk.Payload
	ErrorMessage string
}

// FormState is the state of one open tool. Result is set only while
// succeeded and the error message only while failed.
type FormState struct {
	mu        sync.Mutex
	tool      Descriptor
	fields    Fields
	status    Status
	result    sdk.Payload
	errMsg    string
	attempt   uint64
	destroyed bool
}

// NewFormState returns an idle form holding the tool's default values.
func NewFormState(d Descriptor) *FormState {
	return &FormState{tool: d, fields: Defaults(d.Form)}
}

// Tool returns the descriptor this form belongs to.
func (s *FormState) Tool() Descriptor { return s.tool }

// SetField coerces and stores a field value. Editing a failed form returns
// it to idle.
func (s *FormState) SetField(name string, value any) error {
	spec, ok := FieldByName(s.tool.Form, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	v, err := spec.Coerce(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.destroyed:
		return ErrDestroyed
	case s.status == StatusSubmitting:
		return ErrInFlight
	case s.status == StatusSucceeded:
		return ErrResultShown
	}
	s.fields[name] = v
	if s.status == StatusFailed {
		s.status = StatusIdle
		s.errMsg = ""
	}
	return nil
}

// Begin validates the fields and moves the form to submitting. On a
// validation failure the form becomes failed and no attempt is returned.
func (s *FormState) Begin() (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.destroyed:
		return Attempt{}, ErrDestroyed
	case s.status == StatusSubmitting:
		return Attempt{}, ErrInFlight
	case s.status == StatusSucceeded:
		return Attempt{}, ErrResultShown
	}

	if err := s.tool.Form.Validate(s.fields); err != nil {
		s.status = StatusFailed
		s.result = nil
		s.errMsg = err.Error()
		return Attempt{}, err
	}

	s.attempt++
	s.status = StatusSubmitting
	s.result = nil
	s.errMsg = ""
	return Attempt{
		Token:     s.attempt,
		Operation: s.tool.Form.Operation(),
		Body:      s.tool.Form.Body(s.fields),
	}, nil
}

// Complete applies the outcome of the attempt identified by token. It
// reports false when the outcome was dropped because the form was
// destroyed or the token is stale.
func (s *FormState) Complete(token uint64, payload sdk.Payload, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed || token != s.attempt || s.status != StatusSubmitting {
		return false
	}
	if err == nil && payload == nil {
		err = sdkerrors.Malformed(0, errors.New("empty response"))
	}
	if err != nil {
		s.status = StatusFailed
		s.result = nil
		s.errMsg = sdkerrors.Message(err, s.tool.Form.FallbackMessage())
		return true
	}
	s.status = StatusSucceeded
	s.result = payload
	s.errMsg = ""
	return true
}

// Reset clears the result or error and returns to idle, keeping field values.
func (s *FormState) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return ErrDestroyed
	}
	if s.status == StatusSubmitting {
		return ErrInFlight
	}
	s.status = StatusIdle
	s.result = nil
	s.errMsg = ""
	return nil
}

// TryAnother resets and restores the default field values.
func (s *FormState) TryAnother() error {
	if err := s.Reset(); err != nil {
		return err
	}
	s.mu.Lock()
	s.fields = Defaults(s.tool.Form)
	s.mu.Unlock()
	return nil
}

// Destroy marks the form as gone. Later outcomes are dropped.
func (s *FormState) Destroy() {
	s.mu.Lock()
	s.destroyed = true
	s.mu.Unlock()
}

// Destroyed reports whether Destroy was called.
func (s *FormState) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// Status returns the current status.
func (s *FormState) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns a copy safe to read without holding the form.
func (s *FormState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Tool:         s.tool.ID,
		Status:       s.status,
		Fields:       s.fields.Clone(),
		Result:       s.result,
		ErrorMessage: s.errMsg,
	}
}

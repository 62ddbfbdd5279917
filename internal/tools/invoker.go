package tools

import (
	"context"
	"fmt"

	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

// Caller sends one operation to the API. *sdk.Client implements it.
type Caller interface {
	Invoke(ctx context.Context, operation string, body any) (sdk.Payload, error)
}

// Submit validates the form and, when valid, performs exactly one call.
// The form always leaves the submitting state before Submit returns, even
// if the caller panics.
func Submit(ctx context.Context, caller Caller, form *FormState) error {
	attempt, err := form.Begin()
	if err != nil {
		return err
	}
	_, err = Perform(ctx, caller, form, attempt)
	return err
}

// Perform sends an attempt obtained from form.Begin and applies the outcome.
// It reports whether the outcome was applied; it is dropped when the form
// was destroyed or reset while the call was in flight.
func Perform(ctx context.Context, caller Caller, form *FormState, attempt Attempt) (applied bool, err error) {
	var payload sdk.Payload
	err = fmt.Errorf("%s aborted", attempt.Operation)
	defer func() {
		applied = form.Complete(attempt.Token, payload, err)
	}()

	payload, err = caller.Invoke(ctx, attempt.Operation, attempt.Body)
	return applied, err
}

// DomainSummary counts the available and taken suggestions of a domain result.
func DomainSummary(p sdk.Payload) (available, taken int, err error) {
	var result sdk.DomainResult
	if err := p.Decode(&result); err != nil {
		return 0, 0, err
	}
	available, taken = result.Counts()
	return available, taken, nil
}

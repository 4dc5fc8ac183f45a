// Released under an MIT license. See LICENSE.

// Package outcome provides the type returned by an evaluator for a single
// evaluation request.
package outcome

import (
	"fmt"
)

// Kind distinguishes the three possible outcomes.
type Kind int

// Outcome kinds.
const (
	Empty   Kind = iota // Nothing to show. Definitions only.
	Value               // A value, see Form.
	Failure             // The evaluator failed.
)

// String returns a string representation of Kind. Useful for debugging.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Value:
		return "Value"
	case Failure:
		return "Failure"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Form distinguishes values that are ready to render from deferred
// computations that must be forced.
type Form int

// Value forms.
const (
	Immediate Form = iota
	Deferred
)

// T (outcome) is the result of asking an evaluator to evaluate text.
type T struct {
	kind  Kind
	form  Form
	err   error
	force func() error
	value fmt.Stringer
}

type outcome = T

// None creates an Empty outcome.
func None() *T {
	return &outcome{kind: Empty}
}

// Failed creates a Failure outcome for err.
func Failed(err error) *T {
	return &outcome{kind: Failure, err: err}
}

// Ready creates a Value outcome holding the immediate value v.
func Ready(v fmt.Stringer) *T {
	return &outcome{kind: Value, form: Immediate, value: v}
}

// Later creates a Value outcome holding a deferred computation.
// Calling force runs the computation to completion.
func Later(force func() error) *T {
	return &outcome{kind: Value, form: Deferred, force: force}
}

// Err returns the error for a Failure outcome.
func (o *outcome) Err() error {
	return o.err
}

// Force runs a deferred computation.
func (o *outcome) Force() error {
	if o.form != Deferred || o.force == nil {
		return nil
	}

	return o.force()
}

// Form returns the form of a Value outcome.
func (o *outcome) Form() Form {
	return o.form
}

// Kind returns the outcome's kind.
func (o *outcome) Kind() Kind {
	return o.kind
}

// Value returns the immediate value of a Value outcome.
func (o *outcome) Value() fmt.Stringer {
	return o.value
}

// WrappedError marks a failure reported by the evaluator as a wrapper
// around the error that caused it, typically a compilation failure.
type WrappedError struct {
	Err error
}

// Wrap wraps err.
func Wrap(err error) *WrappedError {
	return &WrappedError{Err: err}
}

func (w *WrappedError) Error() string {
	return "evaluation failed: " + w.Err.Error()
}

// Unwrap returns the wrapped error.
func (w *WrappedError) Unwrap() error {
	return w.Err
}

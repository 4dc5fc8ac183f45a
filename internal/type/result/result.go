// Released under an MIT license. See LICENSE.

// Package result provides the result returned to the host for each
// interpreted snippet.
package result

// Code is the status of a result.
type Code int

// Result codes.
const (
	Success Code = iota
	Error
)

// String returns SUCCESS or ERROR.
func (c Code) String() string {
	if c == Error {
		return "ERROR"
	}

	return "SUCCESS"
}

// T (result) is an immutable interpreter result.
type T struct {
	code Code
	text string
}

type result = T

// Empty creates a successful result with no payload.
func Empty() *T {
	return &result{code: Success}
}

// Failed creates an error result with the message msg.
func Failed(msg string) *T {
	return &result{code: Error, text: msg}
}

// Ok creates a successful result with the payload text.
func Ok(text string) *T {
	return &result{code: Success, text: text}
}

// Code returns the result's code.
func (r *result) Code() Code {
	return r.code
}

// Message returns the payload or error message.
func (r *result) Message() string {
	return r.text
}

// String renders the result as a tagged text message. Results without a
// payload render as an empty string.
func (r *result) String() string {
	if r.text == "" {
		return ""
	}

	return "%text " + r.text
}

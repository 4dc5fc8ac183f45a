// Released under an MIT license. See LICENSE.

// Package engine provides a facade that interprets notebook snippets using
// an evaluator and renders the results for the host.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/hsnb/internal/reader/binding"
	"github.com/michaelmacinnis/hsnb/internal/type/outcome"
	"github.com/michaelmacinnis/hsnb/internal/type/result"
)

// FormType describes how the host should present a snippet's editor.
type FormType int

// Form types.
const (
	Simple FormType = iota
)

// String returns the host's name for the form type.
func (f FormType) String() string {
	return "simple"
}

// Evaluator is the interface for the script engine that evaluates snippets.
// Output produced during evaluation is written to w.
type Evaluator interface {
	Open() error
	Close() error
	Evaluate(text string, w io.Writer) *outcome.T
}

// T (engine) is a facade in front of an evaluator session.
type T struct {
	evaluator Evaluator
	id        string
	log       *logrus.Entry
}

type engine = T

// New creates a new T for the evaluator e.
func New(e Evaluator) *T {
	id := uuid.New().String()

	return &engine{
		evaluator: e,
		id:        id,
		log:       logrus.WithField("session", id),
	}
}

// ID returns the session identifier used in log entries.
func (e *engine) ID() string {
	return e.id
}

// Open opens the evaluator session.
func (e *engine) Open() error {
	e.log.Debug("opening session")

	return errors.Wrap(e.evaluator.Open(), "opening session")
}

// Close closes the evaluator session.
func (e *engine) Close() error {
	e.log.Debug("closing session")

	return errors.Wrap(e.evaluator.Close(), "closing session")
}

// Cancel does nothing. Evaluation cannot be interrupted.
func (e *engine) Cancel() {}

// Progress always returns 0.
func (e *engine) Progress() int {
	return 0
}

// FormType returns Simple.
func (e *engine) FormType() FormType {
	return Simple
}

// Interpret evaluates text writing any output to out. Output is flushed
// to out before Interpret returns, including when evaluation fails.
//
// If text evaluates to nothing but defines z_display or z_main, the
// display binding, or failing that the main binding, is evaluated
// instead.
func (e *engine) Interpret(text string, out io.Writer) (r *result.T) {
	sink := bufio.NewWriter(out)

	log := e.log.WithField("snippet", strings.Count(text, "\n")+1)

	defer func() {
		if v := recover(); v != nil {
			r = e.failed(log, errors.Errorf("%v", v))
		}

		err := sink.Flush()
		if err == nil {
			return
		}

		if r.Code() == result.Error {
			log.WithError(err).Warn("output not flushed")

			return
		}

		r = e.failed(log, errors.Wrap(err, "flushing output"))
	}()

	o := e.evaluator.Evaluate(text, sink)

	if o.Kind() == outcome.Empty {
		switch p := binding.Detect(text); {
		case p.Display:
			log.Debug("evaluating display binding")

			o = e.evaluator.Evaluate("display "+binding.Display, sink)
		case p.Main:
			log.Debug("evaluating main binding")

			o = e.evaluator.Evaluate(binding.Main, sink)
		}
	}

	switch o.Kind() {
	case outcome.Empty:
		return result.Empty()
	case outcome.Failure:
		return e.failed(log, o.Err())
	case outcome.Value:
		if o.Form() == outcome.Immediate {
			return result.Ok(fmt.Sprint(o.Value()))
		}

		if err := o.Force(); err != nil {
			return e.failed(log, err)
		}

		return result.Empty()
	}

	return e.failed(log, errors.Errorf("unknown outcome %v", o.Kind()))
}

func (e *engine) failed(log *logrus.Entry, err error) *result.T {
	msg := message(err)

	log.WithError(err).Error("interpret failed")

	return result.Failed(msg)
}

// message returns the message shown for err. A wrapped evaluator failure
// shows the error it wraps. Anything else shows the root cause.
func message(err error) string {
	var w *outcome.WrappedError
	if errors.As(err, &w) && w.Err != nil {
		return w.Err.Error()
	}

	if msg := errors.Cause(err).Error(); msg != "" {
		return msg
	}

	return err.Error()
}

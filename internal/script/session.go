// Released under an MIT license. See LICENSE.

// Package script evaluates snippets of a lazy, dynamically typed subset
// of Haskell. Bindings persist for the life of a session.
package script

import (
	"fmt"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/hsnb/internal/reader/ast"
	"github.com/michaelmacinnis/hsnb/internal/reader/parser"
	"github.com/michaelmacinnis/hsnb/internal/type/env"
	"github.com/michaelmacinnis/hsnb/internal/type/outcome"
	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

// Defaults for a zero Config.
const (
	DefaultLabel      = "<snippet>"
	DefaultMaxDepth   = 10000
	DefaultParseCache = 64
)

// ErrClosed is returned when evaluating on a session that is not open.
var ErrClosed = errors.New("session is not open")

// Library modules that are always available. Importing one does nothing.
var library = map[string]bool{ //nolint:gochecknoglobals
	"Control.Monad": true,
	"Data.Char":     true,
	"Data.List":     true,
	"Data.Maybe":    true,
	"frege.Prelude": true,
}

// Config holds session settings.
type Config struct {
	Label      string // Source name used in error locations.
	MaxDepth   int    // Evaluation depth limit. Negative disables the limit.
	ParseCache int    // Number of parsed snippets to remember.
}

// T (script) is an evaluation session.
type T struct {
	cache   *lru.Cache[string, *ast.Program]
	config  Config
	globals *env.T
	log     *logrus.Entry
	machine *machine
	modules map[string]*env.T
}

type session = T

// New creates a session. It must be opened before use.
func New(cfg Config) *T {
	if cfg.Label == "" {
		cfg.Label = DefaultLabel
	}

	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	if cfg.ParseCache <= 0 {
		cfg.ParseCache = DefaultParseCache
	}

	return &session{
		config: cfg,
		log:    logrus.WithField("component", "script"),
	}
}

// Open creates a fresh set of bindings.
func (s *session) Open() error {
	cache, err := lru.New[string, *ast.Program](s.config.ParseCache)
	if err != nil {
		return errors.Wrap(err, "creating parse cache")
	}

	s.cache = cache
	s.globals = env.New(prelude())
	s.machine = &machine{maxDepth: s.config.MaxDepth}
	s.modules = map[string]*env.T{}

	s.log.Debug("session opened")

	return nil
}

// Close discards all bindings.
func (s *session) Close() error {
	s.cache = nil
	s.globals = nil
	s.machine = nil
	s.modules = nil

	s.log.Debug("session closed")

	return nil
}

// Names returns the names bound in the session followed by the names
// of the standard functions.
func (s *session) Names() []string {
	if s.globals == nil {
		return nil
	}

	return append(s.globals.Names(), s.globals.Enclosing().Names()...)
}

// Evaluate evaluates text. Declarations are bound before any expression
// is evaluated. Output from IO actions is written to out.
//
// The last expression in text determines the outcome. If text has no
// expressions the outcome is empty. IO actions are returned as deferred
// values and run when forced.
func (s *session) Evaluate(text string, out io.Writer) *outcome.T {
	if s.globals == nil {
		return outcome.Failed(ErrClosed)
	}

	prog, err := s.parse(text)
	if err != nil {
		return outcome.Failed(outcome.Wrap(err))
	}

	target := s.globals

	if prog.Module != "" {
		target = env.New(s.globals)
	}

	if err := s.load(prog.Imports, target); err != nil {
		return outcome.Failed(outcome.Wrap(err))
	}

	if err := check(prog, target); err != nil {
		return outcome.Failed(outcome.Wrap(err))
	}

	s.machine.define(prog.Decls, target)

	if prog.Module != "" {
		s.modules[prog.Module] = target

		s.log.WithField("module", prog.Module).Debug("module registered")
	}

	if len(prog.Exprs) == 0 {
		return outcome.None()
	}

	var result *outcome.T

	err = s.protect(func() {
		result = s.evaluate(prog.Exprs, target, out)
	})
	if err != nil {
		return outcome.Failed(err)
	}

	return result
}

func (s *session) evaluate(es []ast.Expr, scope *env.T, out io.Writer) *outcome.T {
	last := len(es) - 1

	for _, e := range es[:last] {
		if a, ok := s.machine.eval(e, scope).(*value.Action); ok {
			a.Run(out)
		}
	}

	v := s.machine.eval(es[last], scope)

	if a, ok := v.(*value.Action); ok {
		return outcome.Later(func() error {
			return s.protect(func() {
				a.Run(out)
			})
		})
	}

	return outcome.Ready(rendered(value.Display(v)))
}

func (s *session) load(imports []*ast.Import, target *env.T) error {
	for _, i := range imports {
		if library[i.Name] {
			continue
		}

		m, ok := s.modules[i.Name]
		if !ok {
			return errors.Errorf("%s: module %s not found", i.Pos(), i.Name)
		}

		names := m.Names()

		for _, name := range names {
			v, _ := m.Local(name)
			target.Define(name, v)
		}

		s.log.WithFields(logrus.Fields{
			"module": i.Name,
			"names":  strings.Join(names, ","),
		}).Debug("module imported")
	}

	return nil
}

func (s *session) parse(text string) (*ast.Program, error) {
	if prog, ok := s.cache.Get(text); ok {
		return prog, nil
	}

	prog, err := parser.Parse(s.config.Label, text)
	if err != nil {
		return nil, err
	}

	s.cache.Add(text, prog)

	return prog, nil
}

// protect runs f converting a runtime error raised by f into an error.
func (s *session) protect(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		s.machine.depth = 0

		switch r := r.(type) {
		case *value.Error:
			err = errors.Wrapf(r, "evaluating %s", s.config.Label)
		case error:
			err = errors.Wrap(r, "internal error")
		default:
			err = errors.Errorf("internal error: %v", r)
		}

		s.log.WithError(err).Debug("evaluation failed")
	}()

	f()

	return nil
}

type rendered string

func (r rendered) String() string {
	return string(r)
}

var _ fmt.Stringer = rendered("")

// Released under an MIT license. See LICENSE.

// Package env provides the scopes that map names to values.
package env

import (
	"sort"

	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

// T (env) maps names to values. Names not found are looked up in the
// enclosing env.
type T struct {
	previous *T
	names    map[string]value.T
}

type env = T

// New creates a new env enclosed by previous. Previous may be nil.
func New(previous *T) *T {
	return &env{
		previous: previous,
		names:    map[string]value.T{},
	}
}

// Define associates the name k with the value v in the env e.
// Any previous association in e is replaced.
func (e *env) Define(k string, v value.T) {
	e.names[k] = v
}

// Enclosing returns the enclosing env.
func (e *env) Enclosing() *T {
	return e.previous
}

// Local retrieves the value associated with k in e only.
func (e *env) Local(k string) (value.T, bool) {
	v, ok := e.names[k]

	return v, ok
}

// Lookup retrieves the value associated with the name k in the env e or
// the nearest enclosing env that defines it.
func (e *env) Lookup(k string) (value.T, bool) {
	for ; e != nil; e = e.previous {
		if v, ok := e.names[k]; ok {
			return v, true
		}
	}

	return nil, false
}

// Names returns the names defined in e, sorted.
func (e *env) Names() []string {
	ns := make([]string, 0, len(e.names))
	for k := range e.names {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}

// Released under an MIT license. See LICENSE.

// Package binding detects the reserved top-level bindings that name the
// value a snippet wants shown when it has no expression of its own.
package binding

import (
	"regexp"
)

// Reserved binding names.
const (
	Display = "z_display"
	Main    = "z_main"
)

//nolint:gochecknoglobals
var (
	hasDisplay = regexp.MustCompile(`(?m)(^|\s)` + Display + `\s*=`)
	hasMain    = regexp.MustCompile(`(?m)(^|\s)` + Main + `\s*=`)
)

// Presence records which reserved bindings a snippet defines.
type Presence struct {
	Display bool
	Main    bool
}

// Detect reports which reserved bindings text defines.
func Detect(text string) Presence {
	return Presence{
		Display: HasDisplay(text),
		Main:    HasMain(text),
	}
}

// HasDisplay returns true if text binds z_display.
func HasDisplay(text string) bool {
	return hasDisplay.MatchString(text)
}

// HasMain returns true if text binds z_main.
func HasMain(text string) bool {
	return hasMain.MatchString(text)
}

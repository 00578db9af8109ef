// File: internal/assert/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package assert

import (
	"log"

	"github.com/momentics/simplevector/api"
)

// Enabled reports whether precondition checks are compiled in.
func Enabled() bool { return enabled }

// That traps when cond is false. The message is formatted lazily.
func That(cond bool, format string, args ...any) {
	if !enabled || cond {
		return
	}
	fail(format, args...)
}

// InRange traps unless lo <= v <= hi.
func InRange(v, lo, hi int, what string) {
	if !enabled || (v >= lo && v <= hi) {
		return
	}
	fail("%s %d outside [%d, %d]", what, v, lo, hi)
}

func fail(format string, args ...any) {
	log.Panicf("[assert] %v: "+format, append([]any{api.ErrPreconditionFailed}, args...)...)
}

//go:build !release

package assert

import (
	"strings"
	"testing"
)

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %T, want string", r)
		}
		if !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not mention %q", msg, want)
		}
	}()
	fn()
}

func TestEnabledByDefault(t *testing.T) {
	if !Enabled() {
		t.Fatal("assertions must be on without the release tag")
	}
}

func TestThat(t *testing.T) {
	That(true, "never printed")
	expectPanic(t, "pop on empty", func() {
		That(false, "pop on empty")
	})
}

func TestInRange(t *testing.T) {
	InRange(0, 0, 0, "position")
	InRange(3, 0, 3, "position")
	expectPanic(t, "position 4 outside [0, 3]", func() {
		InRange(4, 0, 3, "position")
	})
	expectPanic(t, "precondition violated", func() {
		InRange(-1, 0, 3, "position")
	})
}

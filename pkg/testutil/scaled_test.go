package testutil

import (
	"testing"
	"time"

	"src.plugview.dev/pkg/env"
)

func TestScaled(t *testing.T) {
	for _, test := range []struct {
		env  string
		want time.Duration
	}{
		{"", time.Second},
		{"2", 2 * time.Second},
		{"0.5", 500 * time.Millisecond},
		{"bad", time.Second},
		{"-1", time.Second},
	} {
		t.Setenv(env.PLUGVIEW_TEST_TIME_SCALE, test.env)
		if got := Scaled(time.Second); got != test.want {
			t.Errorf("with scale %q, Scaled(1s) = %v, want %v", test.env, got, test.want)
		}
	}
}

func TestEventually(t *testing.T) {
	n := 0
	if !Eventually(time.Second, func() bool { n++; return n >= 3 }) {
		t.Errorf("Eventually -> false, want true")
	}
	if Eventually(10*time.Millisecond, func() bool { return false }) {
		t.Errorf("Eventually with false condition -> true")
	}
}

func TestSet(t *testing.T) {
	x := 1
	t.Run("inner", func(t *testing.T) {
		Set(t, &x, 2)
		if x != 2 {
			t.Errorf("x = %d after Set, want 2", x)
		}
	})
	if x != 1 {
		t.Errorf("x = %d after cleanup, want 1", x)
	}
}

package compositor_test

import (
	"fmt"
	"testing"

	. "src.plugview.dev/pkg/compositor"
)

func TestIsFatal(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrOutOfMemory, true},
		{fmt.Errorf("present: %w", ErrOutOfMemory), true},
		{ErrTimeout, false},
		{ErrOutdated, false},
		{ErrLost, false},
		{nil, false},
	}
	for _, test := range tests {
		if got := IsFatal(test.err); got != test.want {
			t.Errorf("IsFatal(%v) -> %v, want %v", test.err, got, test.want)
		}
	}
}

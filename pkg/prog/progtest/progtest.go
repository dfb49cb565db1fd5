// Package progtest contains utilities for testing implementations of
// prog.Program.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.plugview.dev/pkg/must"
	"src.plugview.dev/pkg/prog"
)

// Case is a test case of a Program, created with ThatPlugview.
type Case struct {
	args []string
	want result
}

type result struct {
	exit           int
	stdout, stderr output
}

type output struct {
	content  string
	contains bool
	set      bool
}

func (o output) String() string {
	if o.contains {
		return "containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string { return `"` + strings.ReplaceAll(s, "\n", `\n`) + `"` }

// ThatPlugview returns a new Case running plugview with the given arguments.
// Unless modified, the case expects the program to exit with 0 and write
// nothing.
func ThatPlugview(args ...string) Case {
	return Case{args: append([]string{"plugview"}, args...),
		want: result{stdout: output{set: true}, stderr: output{set: true}}}
}

// DoesNothing returns c unchanged. It is useful for cases that only check
// side effects.
func (c Case) DoesNothing() Case { return c }

// ExitsWith returns an altered Case that expects the given exit status.
func (c Case) ExitsWith(exit int) Case {
	c.want.exit = exit
	return c
}

// WritesStdout returns an altered Case that expects exactly s on stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s, set: true}
	return c
}

// WritesStdoutContaining returns an altered Case that expects stdout to
// contain s.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, contains: true, set: true}
	return c
}

// WritesStderr returns an altered Case that expects exactly s on stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s, set: true}
	return c
}

// WritesStderrContaining returns an altered Case that expects stderr to
// contain s.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, contains: true, set: true}
	return c
}

// IgnoresStderr returns an altered Case that accepts any stderr output.
func (c Case) IgnoresStderr() Case {
	c.want.stderr = output{}
	return c
}

// Test runs p against all the given cases.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		c := c // per-iteration copy (go 1.22 loopvar semantics)
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.args...)
			if exit != c.want.exit {
				t.Errorf("got exit %v, want %v", exit, c.want.exit)
			}
			check(t, "stdout", stdout, c.want.stdout)
			check(t, "stderr", stderr, c.want.stderr)
		})
	}
}

func check(t *testing.T, name, got string, want output) {
	t.Helper()
	if !want.set {
		return
	}
	if want.contains && !strings.Contains(got, want.content) ||
		!want.contains && got != want.content {
		t.Errorf("got %s %s, want %v", name, quote(got), want)
	}
}

// Run runs p with the given arguments, the first of which is the program
// name, and returns its exit status and outputs.
func Run(p prog.Program, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	w0.Close()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Drain the pipes concurrently so that large outputs don't block the
	// program.
	outCh, errCh := drain(r1), drain(r2)
	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()
	return exit, <-outCh, <-errCh
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		defer r.Close()
		ch <- string(must.OK1(io.ReadAll(r)))
	}()
	return ch
}

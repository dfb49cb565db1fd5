package executor_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	. "src.plugview.dev/pkg/executor"
	"src.plugview.dev/pkg/testutil"
)

func TestPool_BoundsConcurrency(t *testing.T) {
	p := NewPool(2)
	var running, peak atomic.Int32
	release := make(chan struct{})
	for i := 0; i < 6; i++ {
		p.Spawn(func() {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			<-release
			running.Add(-1)
		})
	}
	testutil.Eventually(time.Second, func() bool { return running.Load() == 2 })
	time.Sleep(testutil.Scaled(10 * time.Millisecond))
	close(release)
	p.Close()
	if got := peak.Load(); got != 2 {
		t.Errorf("peak concurrency %d, want 2", got)
	}
}

func TestPool_CloseWaits(t *testing.T) {
	p := NewPool(0)
	var done atomic.Bool
	p.Spawn(func() {
		time.Sleep(testutil.Scaled(5 * time.Millisecond))
		done.Store(true)
	})
	p.Close()
	if !done.Load() {
		t.Errorf("Close returned before the function finished")
	}
}

func TestQueue_RunsInOrder(t *testing.T) {
	q := NewQueue()
	var mutex sync.Mutex
	var got []int
	for i := 0; i < 10; i++ {
		i := i // per-iteration copy (go 1.22 loopvar semantics)
		q.Spawn(func() {
			mutex.Lock()
			defer mutex.Unlock()
			got = append(got, i)
		})
	}
	q.Close()
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestQueue_DropsAfterClose(t *testing.T) {
	q := NewQueue()
	q.Close()
	ran := false
	q.Spawn(func() { ran = true })
	if ran {
		t.Errorf("function spawned after Close ran")
	}
}

func TestInline(t *testing.T) {
	ran := false
	Inline{}.Spawn(func() { ran = true })
	if !ran {
		t.Errorf("Inline did not run the function synchronously")
	}
}

package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/oneshot"
	"src.plugview.dev/pkg/system"
	"src.plugview.dev/pkg/testutil"
	"src.plugview.dev/pkg/tk"
	"src.plugview.dev/pkg/widget"
	"src.plugview.dev/pkg/widget/operation"
)

func TestDispatch_Output(t *testing.T) {
	f := setup(t, &testApp{})
	f.d.dispatch(action.Output{Message: "a"})
	f.d.dispatch(action.Output{Message: nil})
	f.d.dispatch(action.Output{Message: "b"})
	if diff := cmp.Diff([]any{"a", "b"}, f.d.messages); diff != "" {
		t.Errorf("queued messages (-want +got):\n%s", diff)
	}
	if n := promtest.ToFloat64(f.d.metrics.actions.WithLabelValues("output")); n != 3 {
		t.Errorf("%v output actions counted, want 3", n)
	}
}

func TestDispatch_Clipboard(t *testing.T) {
	cb := &clipboard.Memory{}
	f := setup(t, &testApp{}, func(s *Settings) { s.Clipboard = cb })

	f.d.dispatch(action.ClipboardWrite{Target: clipboard.Primary, Contents: "hello"})
	reply := oneshot.New[clipboard.Contents]()
	f.d.dispatch(action.ClipboardRead{Target: clipboard.Primary, Reply: reply})
	if got, ok := reply.TryGet(); !ok || got != (clipboard.Contents{Text: "hello", OK: true}) {
		t.Errorf("read primary got %v, %v", got, ok)
	}

	reply = oneshot.New[clipboard.Contents]()
	f.d.dispatch(action.ClipboardRead{Target: clipboard.Standard, Reply: reply})
	if got, ok := reply.TryGet(); !ok || got.OK {
		t.Errorf("read empty standard clipboard got %v, %v", got, ok)
	}
}

func TestDispatch_WindowOps(t *testing.T) {
	f := setup(t, &testApp{})
	f.ctrl.err = errors.New("host refused")
	for _, op := range []action.WindowOp{
		action.Close, action.Resize, action.GainFocus,
		action.Minimize, action.Maximize, action.ChangeTitle,
	} {
		f.d.dispatch(action.Window{Op: op, Size: geom.Sz(10, 20)})
	}
	if diff := cmp.Diff([]string{"close", "resize", "focus"}, f.ctrl.Calls()); diff != "" {
		t.Errorf("controller calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]geom.Size{geom.Sz(10, 20)}, f.ctrl.resizes); diff != "" {
		t.Errorf("resizes (-want +got):\n%s", diff)
	}
	if f.d.phase != Running {
		t.Errorf("phase %v after failed window operations", f.d.phase)
	}
}

func TestDispatch_ExitClosesWindow(t *testing.T) {
	f := setup(t, &testApp{})
	f.d.dispatch(action.Exit{})
	if diff := cmp.Diff([]string{"close"}, f.ctrl.Calls()); diff != "" {
		t.Errorf("controller calls (-want +got):\n%s", diff)
	}
}

func TestDispatch_ReloadPanics(t *testing.T) {
	f := setup(t, &testApp{})
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("recovered %v, want ErrNotImplemented", err)
		}
	}()
	f.d.dispatch(action.Reload{})
	t.Errorf("reload did not panic")
}

func TestDispatch_LoadFont(t *testing.T) {
	f := setup(t, &testApp{})

	ok := oneshot.New[error]()
	f.d.dispatch(action.LoadFont{Bytes: []byte("OTTO font data"), Reply: ok})
	if err, resolved := ok.TryGet(); !resolved || err != nil {
		t.Errorf("valid font got %v, %v", err, resolved)
	}

	bad := oneshot.New[error]()
	f.d.dispatch(action.LoadFont{Bytes: []byte("not a font"), Reply: bad})
	if err, resolved := bad.TryGet(); !resolved || err == nil {
		t.Errorf("invalid font got %v, %v", err, resolved)
	}
	if n := f.comp.Fonts(); n != 1 {
		t.Errorf("%d fonts loaded, want 1", n)
	}
}

func TestDispatch_SystemInformation(t *testing.T) {
	f := setup(t, &testApp{})
	reply := oneshot.New[system.Information]()
	f.d.dispatch(action.SystemInformation{Reply: reply})

	ctx, cancel := context.WithTimeout(context.Background(), testutil.Scaled(5*time.Second))
	defer cancel()
	info, err := reply.Wait(ctx)
	if err != nil {
		t.Fatalf("system information not delivered: %v", err)
	}
	if info.GraphicsAdapter != "headless" || info.GraphicsBackend != "memory" {
		t.Errorf("graphics %q, %q", info.GraphicsAdapter, info.GraphicsBackend)
	}
}

// chainOp chains into itself links times, counting the passes.
type chainOp struct {
	widget.Traverse
	links  int
	passes *int
}

func (op chainOp) Container(_ widget.ID, _ geom.Rectangle, children func(widget.Operation)) {
	widget.Descend(op, children)
}

func (op chainOp) Finish() widget.Outcome {
	*op.passes++
	if op.links == 0 {
		return widget.None()
	}
	return widget.Chain(chainOp{links: op.links - 1, passes: op.passes})
}

func TestDispatch_WidgetOperationFollowsChain(t *testing.T) {
	f := setup(t, &testApp{})
	passes := 0
	f.d.dispatch(action.Widget{Operation: chainOp{links: 3, passes: &passes}})
	if passes != 4 {
		t.Errorf("%d passes, want 4", passes)
	}
}

func TestDispatch_WidgetOperationMovesFocus(t *testing.T) {
	f := setup(t, &testApp{
		view: func() widget.Widget {
			return tk.Column{Items: []widget.Widget{
				tk.Button{ID: "a", Label: "a"},
				tk.Button{ID: "b", Label: "b"},
			}}
		},
	})
	f.d.dispatch(action.Widget{Operation: operation.FocusNext()})
	f.d.dispatch(action.Widget{Operation: operation.FocusNext()})

	reply := oneshot.New[any]()
	f.d.dispatch(action.Widget{Operation: operation.FocusedID(), Reply: reply})
	if id, _ := reply.TryGet(); id != widget.ID("b") {
		t.Errorf("focused %v, want b", id)
	}
}

func TestDispatch_WidgetOperationWithoutValueRepliesNil(t *testing.T) {
	f := setup(t, &testApp{})
	reply := oneshot.New[any]()
	f.d.dispatch(action.Widget{Operation: operation.Unfocus(), Reply: reply})
	if v, ok := reply.TryGet(); !ok || v != nil {
		t.Errorf("reply %v, %v; want nil, true", v, ok)
	}
}

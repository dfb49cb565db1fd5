package driver

import (
	"fmt"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/system"
)

// dispatch interprets a. Failures of host operations are logged and
// otherwise ignored.
func (d *Driver) dispatch(a action.Action) {
	d.metrics.actions.WithLabelValues(action.Kind(a)).Inc()
	switch a := a.(type) {
	case action.Output:
		d.enqueue(a.Message)
	case action.ClipboardRead:
		contents := d.clipboard.Read(a.Target)
		if a.Reply != nil {
			a.Reply.Resolve(contents)
		}
	case action.ClipboardWrite:
		d.clipboard.Write(a.Target, a.Contents)
	case action.Window:
		d.windowOp(a)
	case action.SystemInformation:
		graphics := d.compositor.Information()
		reply := a.Reply
		d.queue.Spawn(func() {
			info := system.Fetch(graphics)
			if reply != nil {
				reply.Resolve(info)
			}
		})
	case action.Widget:
		ui := d.ui.Built()
		var result any
		for op := a.Operation; op != nil; {
			ui.Operate(d.renderer, op)
			outcome := op.Finish()
			result, _ = outcome.Value()
			op = outcome.Next()
		}
		if a.Reply != nil {
			a.Reply.Resolve(result)
		}
	case action.LoadFont:
		err := d.compositor.LoadFont(a.Bytes)
		if err != nil {
			logger.Printf("cannot load font: %v", err)
		}
		if a.Reply != nil {
			a.Reply.Resolve(err)
		}
	case action.Exit:
		if err := d.controller.Close(); err != nil {
			logger.Printf("exit: %v", err)
		}
	case action.Reload:
		panic(fmt.Errorf("reload: %w", ErrNotImplemented))
	default:
		logger.Printf("ignoring unknown action %T", a)
	}
}

func (d *Driver) windowOp(a action.Window) {
	var err error
	switch a.Op {
	case action.Close:
		err = d.controller.Close()
	case action.Resize:
		logger.Printf("resize window to %v", a.Size)
		err = d.controller.Resize(a.Size)
	case action.GainFocus:
		err = d.controller.Focus()
	default:
		logger.Printf("ignoring window operation %v", a.Op)
	}
	if err != nil {
		logger.Printf("window %v: %v", a.Op, err)
	}
}

package widget

import "src.plugview.dev/pkg/event"

// Shell is the channel through which a widget reacting to an event talks
// back to the user interface.
type Shell struct {
	messages      *[]any
	captured      bool
	layoutInvalid bool
	outdated      bool
}

// NewShell returns a Shell that publishes into messages.
func NewShell(messages *[]any) *Shell {
	return &Shell{messages: messages}
}

// Publish queues a message for the update function. A nil message is
// dropped.
func (s *Shell) Publish(msg any) {
	if msg != nil {
		*s.messages = append(*s.messages, msg)
	}
}

// CaptureEvent marks the current event as consumed.
func (s *Shell) CaptureEvent() { s.captured = true }

// Status returns the consumption status of the current event.
func (s *Shell) Status() event.Status {
	if s.captured {
		return event.Captured
	}
	return event.Ignored
}

// InvalidateLayout requests a new layout before the next event is processed.
func (s *Shell) InvalidateLayout() { s.layoutInvalid = true }

// IsLayoutInvalid reports whether InvalidateLayout was called.
func (s *Shell) IsLayoutInvalid() bool { return s.layoutInvalid }

// InvalidateWidgets marks the user interface as outdated, causing a rebuild
// even if no message was published.
func (s *Shell) InvalidateWidgets() { s.outdated = true }

// AreWidgetsInvalid reports whether InvalidateWidgets was called.
func (s *Shell) AreWidgetsInvalid() bool { return s.outdated }

// Reset prepares s for the next event, keeping the message queue.
func (s *Shell) Reset() {
	s.captured = false
	s.layoutInvalid = false
}

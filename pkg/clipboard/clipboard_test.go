package clipboard_test

import (
	"testing"

	. "src.plugview.dev/pkg/clipboard"
)

func TestMemory(t *testing.T) {
	var m Memory
	if got := m.Read(Standard); got.OK {
		t.Errorf("empty clipboard read -> %v", got)
	}
	m.Write(Standard, "foo")
	m.Write(Primary, "bar")
	if got := m.Read(Standard); got != (Contents{"foo", true}) {
		t.Errorf("got %v, want foo", got)
	}
	if got := m.Read(Primary); got != (Contents{"bar", true}) {
		t.Errorf("got %v, want bar", got)
	}
}

func TestNull(t *testing.T) {
	var n Null
	n.Write(Standard, "foo")
	if got := n.Read(Standard); got.OK {
		t.Errorf("got %v, want empty", got)
	}
}

// Package clipboard provides the clipboard abstraction used by widgets and
// clipboard actions.
package clipboard

import "sync"

// Kind selects one of the clipboards of the system.
type Kind uint8

const (
	// Standard is the regular clipboard.
	Standard Kind = iota
	// Primary is the X11-style selection clipboard.
	Primary
)

func (k Kind) String() string {
	if k == Primary {
		return "primary"
	}
	return "standard"
}

// Contents is the result of reading a clipboard. OK is false if the clipboard
// is empty or unavailable.
type Contents struct {
	Text string
	OK   bool
}

// Clipboard reads and writes clipboard contents. Neither operation reports
// failures.
type Clipboard interface {
	Read(k Kind) Contents
	Write(k Kind, text string)
}

// Memory is an in-process Clipboard. The zero value is ready to use and safe
// for concurrent use.
type Memory struct {
	mutex    sync.Mutex
	contents map[Kind]string
}

func (m *Memory) Read(k Kind) Contents {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	text, ok := m.contents[k]
	return Contents{text, ok}
}

func (m *Memory) Write(k Kind, text string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.contents == nil {
		m.contents = make(map[Kind]string)
	}
	m.contents[k] = text
}

// Null is a Clipboard that is always empty and discards writes.
type Null struct{}

func (Null) Read(Kind) Contents { return Contents{} }
func (Null) Write(Kind, string) {}

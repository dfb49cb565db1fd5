package driver

import (
	"fmt"

	"src.plugview.dev/pkg/uitree"
)

// Phases of a uiSlot.
type slotPhase uint8

const (
	slotEmpty slotPhase = iota
	slotCached
	slotBuilt
)

var slotPhaseNames = [...]string{"empty", "cached", "built"}

func (p slotPhase) String() string { return slotPhaseNames[p] }

// uiSlot holds either the live user interface or the cache retired from it,
// never both. Using it in the wrong phase is a programming error and panics.
type uiSlot struct {
	phase slotPhase
	ui    *uitree.UserInterface
	cache uitree.Cache
}

func (s *uiSlot) expect(p slotPhase, op string) {
	if s.phase != p {
		panic(fmt.Sprintf("driver: %s in %s phase, want %s", op, s.phase, p))
	}
}

// Built returns the live user interface.
func (s *uiSlot) Built() *uitree.UserInterface {
	s.expect(slotBuilt, "use of user interface")
	return s.ui
}

// Set stores a freshly built user interface in an empty or cached slot.
func (s *uiSlot) Set(ui *uitree.UserInterface) {
	if s.phase == slotBuilt {
		panic("driver: set of user interface in built phase")
	}
	s.phase, s.ui, s.cache = slotBuilt, ui, uitree.Cache{}
}

// Retire turns the live user interface into its cache.
func (s *uiSlot) Retire() {
	s.expect(slotBuilt, "retire")
	s.phase, s.cache, s.ui = slotCached, s.ui.IntoCache(), nil
}

// Cache returns the cache of a retired user interface.
func (s *uiSlot) Cache() uitree.Cache {
	s.expect(slotCached, "take of cache")
	return s.cache
}

// Discard drops whatever the slot holds.
func (s *uiSlot) Discard() {
	*s = uiSlot{}
}

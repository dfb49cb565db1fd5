package widget

// Tree holds the state of a widget and, recursively, of its children. The
// shape of a Tree mirrors the shape of the widget it was built or diffed
// against.
type Tree struct {
	Tag      Tag
	State    any
	Children []*Tree
}

// NewTree builds the initial state tree for w.
func NewTree(w Widget) *Tree {
	t := &Tree{}
	if s, ok := w.(Stateful); ok {
		t.Tag = s.Tag()
		t.State = s.NewState()
	}
	for _, child := range ChildrenOf(w) {
		t.Children = append(t.Children, NewTree(child))
	}
	return t
}

// Diff reconciles t with w. State is kept where the tag at the same
// structural position is unchanged and reset elsewhere.
func (t *Tree) Diff(w Widget) {
	var tag Tag
	if s, ok := w.(Stateful); ok {
		tag = s.Tag()
	}
	if tag != t.Tag {
		*t = *NewTree(w)
		return
	}
	children := ChildrenOf(w)
	for i, child := range children {
		if i < len(t.Children) {
			t.Children[i].Diff(child)
		} else {
			t.Children = append(t.Children, NewTree(child))
		}
	}
	t.Children = t.Children[:len(children)]
}

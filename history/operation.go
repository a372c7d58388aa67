package history

import "github.com/textkit/editorcore/position"

// Mutator is the narrow surface an Operation needs to apply or reverse
// itself. gapbuffer.GapBuffer satisfies it.
type Mutator interface {
	InsertAt(p position.Position, text string) (position.Position, error)
	DeleteRange(r position.Range) (string, error)
}

// Operation is a single reversible edit, or a group of them.
type Operation interface {
	// Apply performs the edit against m.
	Apply(m Mutator) error
	// Reverse undoes the edit against m.
	Reverse(m Mutator) error
	// Description is a short human-readable label, used for UndoInfo/RedoInfo.
	Description() string
	// UndoAnchor is where the cursor belongs after Reverse runs.
	UndoAnchor() position.Position
	// RedoAnchor is where the cursor belongs after Apply runs.
	RedoAnchor() position.Position
}

// Insert inserts Text at Position.
type Insert struct {
	Position position.Position
	Text     string
}

// NewInsert builds an Insert operation.
func NewInsert(p position.Position, text string) *Insert {
	return &Insert{Position: p, Text: text}
}

func (o *Insert) Apply(m Mutator) error {
	_, err := m.InsertAt(o.Position, o.Text)
	return err
}

func (o *Insert) Reverse(m Mutator) error {
	end := o.Position.Add(position.DistanceOf(o.Text))
	_, err := m.DeleteRange(position.NewRange(o.Position, end))
	return err
}

func (o *Insert) Description() string { return "insert" }

// UndoAnchor is the position the insert happened at.
func (o *Insert) UndoAnchor() position.Position { return o.Position }

// RedoAnchor is the end of the re-inserted text.
func (o *Insert) RedoAnchor() position.Position {
	return o.Position.Add(position.DistanceOf(o.Text))
}

// Delete removes the text in Range. Content is the text that was there at
// the time the Delete was constructed, captured so Reverse can restore it
// without needing to have read it back from the buffer itself.
type Delete struct {
	Range   position.Range
	Content string
}

// NewDelete builds a Delete operation. Content must be the text currently
// occupying Range, captured by the caller before the delete is applied.
func NewDelete(r position.Range, content string) *Delete {
	return &Delete{Range: r, Content: content}
}

func (o *Delete) Apply(m Mutator) error {
	_, err := m.DeleteRange(o.Range)
	return err
}

func (o *Delete) Reverse(m Mutator) error {
	_, err := m.InsertAt(o.Range.Start, o.Content)
	return err
}

func (o *Delete) Description() string { return "delete" }

// UndoAnchor is the start of the range that was restored.
func (o *Delete) UndoAnchor() position.Position { return o.Range.Start }

// RedoAnchor is the start of the range that was deleted again.
func (o *Delete) RedoAnchor() position.Position { return o.Range.Start }

// Replace substitutes After for Before within RangeBefore. RangeAfter is the
// range the replacement text occupies once applied, used by Reverse.
type Replace struct {
	RangeBefore position.Range
	Before      string
	After       string
}

// NewReplace builds a Replace operation. Before must be the text currently
// occupying RangeBefore, captured by the caller before the replace is
// applied.
func NewReplace(r position.Range, before, after string) *Replace {
	return &Replace{RangeBefore: r, Before: before, After: after}
}

// RangeAfter is the range the replacement text spans once applied.
func (o *Replace) RangeAfter() position.Range {
	end := o.RangeBefore.Start.Add(position.DistanceOf(o.After))
	return position.NewRange(o.RangeBefore.Start, end)
}

func (o *Replace) Apply(m Mutator) error {
	if !o.RangeBefore.IsEmpty() {
		if _, err := m.DeleteRange(o.RangeBefore); err != nil {
			return err
		}
	}
	if o.After != "" {
		if _, err := m.InsertAt(o.RangeBefore.Start, o.After); err != nil {
			return err
		}
	}
	return nil
}

func (o *Replace) Reverse(m Mutator) error {
	after := o.RangeAfter()
	if !after.IsEmpty() {
		if _, err := m.DeleteRange(after); err != nil {
			return err
		}
	}
	if o.Before != "" {
		if _, err := m.InsertAt(o.RangeBefore.Start, o.Before); err != nil {
			return err
		}
	}
	return nil
}

func (o *Replace) Description() string { return "replace" }

// UndoAnchor is the start of the range the replacement occupied.
func (o *Replace) UndoAnchor() position.Position { return o.RangeBefore.Start }

// RedoAnchor is the end of the replacement text once re-applied.
func (o *Replace) RedoAnchor() position.Position { return o.RangeAfter().End }

// Group bundles a sequence of Operations into one undo unit. Reverse runs
// the children in reverse order, each reversed, so the net effect of
// Apply followed by Reverse is always a no-op.
type Group struct {
	Name     string
	Children []Operation
}

// NewGroup builds a Group. An empty Children slice is valid but should be
// dropped by the caller rather than pushed onto a History (see
// History.EndGroup).
func NewGroup(name string, children []Operation) *Group {
	return &Group{Name: name, Children: children}
}

func (o *Group) IsEmpty() bool { return len(o.Children) == 0 }

func (o *Group) Apply(m Mutator) error {
	for _, child := range o.Children {
		if err := child.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

func (o *Group) Reverse(m Mutator) error {
	for i := len(o.Children) - 1; i >= 0; i-- {
		if err := o.Children[i].Reverse(m); err != nil {
			return err
		}
	}
	return nil
}

func (o *Group) Description() string {
	if o.Name != "" {
		return o.Name
	}
	return "group"
}

// UndoAnchor is the first child's undo anchor, since Reverse undoes
// children in reverse order and the first child is undone last.
func (o *Group) UndoAnchor() position.Position {
	if o.IsEmpty() {
		return position.Zero
	}
	return o.Children[0].UndoAnchor()
}

// RedoAnchor is the last child's redo anchor, since Apply applies children
// in order and the last child is applied last.
func (o *Group) RedoAnchor() position.Position {
	if o.IsEmpty() {
		return position.Zero
	}
	return o.Children[len(o.Children)-1].RedoAnchor()
}

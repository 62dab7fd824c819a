package wizard

// FocusCycle tracks which of an ordered row of focus targets holds
// focus, by index. Directional moves stop at the row's edges; cyclic
// moves wrap. With a single target every move is a no-op.
type FocusCycle struct {
	index int
	size  int
}

// NewFocusCycle creates a cycle over size targets with focus on the
// first. Size is clamped to at least one.
func NewFocusCycle(size int) *FocusCycle {
	if size < 1 {
		size = 1
	}
	return &FocusCycle{size: size}
}

// Index returns the focused target's position.
func (c *FocusCycle) Index() int {
	return c.index
}

// Size returns the number of targets.
func (c *FocusCycle) Size() int {
	return c.size
}

// AtFirst reports whether focus is on the first target.
func (c *FocusCycle) AtFirst() bool {
	return c.index == 0
}

// AtLast reports whether focus is on the last target.
func (c *FocusCycle) AtLast() bool {
	return c.index == c.size-1
}

// Advance moves focus one target forward, stopping at the last.
// Reports whether focus moved.
func (c *FocusCycle) Advance() bool {
	if c.AtLast() {
		return false
	}
	c.index++
	return true
}

// Retreat moves focus one target back, stopping at the first.
// Reports whether focus moved.
func (c *FocusCycle) Retreat() bool {
	if c.AtFirst() {
		return false
	}
	c.index--
	return true
}

// Next moves focus forward, wrapping from the last target to the first.
func (c *FocusCycle) Next() {
	c.index = (c.index + 1) % c.size
}

// Prev moves focus back, wrapping from the first target to the last.
func (c *FocusCycle) Prev() {
	c.index = (c.index - 1 + c.size) % c.size
}

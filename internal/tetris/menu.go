package tetris

// MenuItem is one entry of an overlay menu. Non-selectable items are
// headings the cursor skips over.
type MenuItem struct {
	ID         int
	Label      string
	Selectable bool
}

// Menu is the minimal selectable-list construct used for the pause and
// game-over overlays. At most one item is selected at a time, and the
// selection only ever lands on a selectable item.
type Menu struct {
	items    []MenuItem
	selected int // index into items, -1 if nothing is selectable
}

// NewMenu creates a menu with the selection on the first selectable
// item, or none if no item is selectable.
func NewMenu(items ...MenuItem) *Menu {
	m := &Menu{items: items, selected: -1}
	for i, item := range items {
		if item.Selectable {
			m.selected = i
			break
		}
	}
	return m
}

// Down moves the selection to the next selectable item, wrapping to
// the first one past the end. No-op if nothing is selectable.
func (m *Menu) Down() {
	if m.selected < 0 {
		return
	}
	for i := m.selected + 1; i < len(m.items); i++ {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
	for i, item := range m.items {
		if item.Selectable {
			m.selected = i
			return
		}
	}
}

// Up moves the selection to the previous selectable item, wrapping to
// the last one past the start. No-op if nothing is selectable.
func (m *Menu) Up() {
	if m.selected < 0 {
		return
	}
	for i := m.selected - 1; i >= 0; i-- {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].Selectable {
			m.selected = i
			return
		}
	}
}

// Select returns the ID of the currently selected item, or false if
// nothing is selectable.
func (m *Menu) Select() (int, bool) {
	if m.selected < 0 {
		return 0, false
	}
	return m.items[m.selected].ID, true
}

// Items returns the menu entries in display order.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the selected item, or -1.
func (m *Menu) Selected() int {
	return m.selected
}

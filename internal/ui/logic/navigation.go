package logic

// Navigator tracks the highlighted row of a list and the viewport that keeps
// it visible. Moving past either end wraps around.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	count          int
}

// NewNavigator creates a navigator showing at most height rows
func NewNavigator(height int) *Navigator {
	if height < 1 {
		height = 1
	}
	return &Navigator{viewportHeight: height}
}

// SetCount updates the number of rows, clamping the selection into range
func (n *Navigator) SetCount(count int) {
	n.count = count
	if n.selectedIndex >= count {
		n.selectedIndex = count - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// Move steps the selection: "up", "down", "home" or "end"
func (n *Navigator) Move(direction string) {
	if n.count == 0 {
		return
	}
	switch direction {
	case "up":
		n.selectedIndex--
		if n.selectedIndex < 0 {
			n.selectedIndex = n.count - 1
		}
	case "down":
		n.selectedIndex++
		if n.selectedIndex >= n.count {
			n.selectedIndex = 0
		}
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.count - 1
	}
	n.ensureSelectedVisible()
}

// Reset moves the selection back to the first row
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// SelectedIndex returns the highlighted row
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// ensureSelectedVisible scrolls the viewport just enough to show the selection
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.count - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

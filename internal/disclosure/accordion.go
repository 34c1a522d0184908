// Package disclosure models a list of independently expandable rows.
package disclosure

// State is the visibility of one row's panel.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Accordion holds one State per row. Rows never affect each other; there
// is no single-open constraint.
type Accordion struct {
	rows []State
}

// New returns an accordion of n collapsed rows.
func New(n int) *Accordion {
	if n < 0 {
		n = 0
	}
	return &Accordion{rows: make([]State, n)}
}

// Len returns the number of rows.
func (a *Accordion) Len() int { return len(a.rows) }

// Toggle flips row i and reports whether i was a valid row.
func (a *Accordion) Toggle(i int) bool {
	if i < 0 || i >= len(a.rows) {
		return false
	}
	if a.rows[i] == Expanded {
		a.rows[i] = Collapsed
	} else {
		a.rows[i] = Expanded
	}
	return true
}

// State returns the state of row i; out-of-range rows read as collapsed.
func (a *Accordion) State(i int) State {
	if i < 0 || i >= len(a.rows) {
		return Collapsed
	}
	return a.rows[i]
}

// IsExpanded reports whether row i is expanded.
func (a *Accordion) IsExpanded(i int) bool { return a.State(i) == Expanded }

// Expanded returns the indexes of expanded rows in ascending order.
func (a *Accordion) Expanded() []int {
	var out []int
	for i, s := range a.rows {
		if s == Expanded {
			out = append(out, i)
		}
	}
	return out
}

package selection

// none is the internal sentinel for "no row highlighted"
const none = -1

// State tracks which result row the keyboard has highlighted. The index
// is always valid for the result count it was moved against, or absent.
type State struct {
	index int
}

// New creates a selection state with nothing highlighted
func New() *State {
	return &State{index: none}
}

// Index returns the highlighted row, if any
func (s *State) Index() (int, bool) {
	if s.index == none {
		return 0, false
	}
	return s.index, true
}

// Reset clears the highlight. Called whenever the result set changes.
func (s *State) Reset() {
	s.index = none
}

// Next moves the highlight down through n rows, wrapping from the last
// row to the first. With no highlight it lands on row 0. No-op when n==0.
func (s *State) Next(n int) {
	if n == 0 {
		return
	}
	if s.index == none || s.index >= n-1 {
		s.index = 0
		return
	}
	s.index++
}

// Prev moves the highlight up through n rows, wrapping from the first
// row to the last. With no highlight it lands on the last row.
func (s *State) Prev(n int) {
	if n == 0 {
		return
	}
	if s.index == none || s.index <= 0 {
		s.index = n - 1
		return
	}
	s.index--
}

// Clamp drops the highlight if it no longer fits n rows
func (s *State) Clamp(n int) {
	if s.index >= n {
		s.index = none
	}
}

package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeClosed is the host view with the palette dismissed
	ModeClosed Mode = iota
	// ModePalette is the open search palette capturing text input
	ModePalette
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// ResultCount is the number of rows currently navigable (results, or
	// history entries when the input is empty)
	ResultCount() int
	// HasSelection reports whether a row is highlighted
	HasSelection() bool
	// InputText is the current raw query text
	InputText() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

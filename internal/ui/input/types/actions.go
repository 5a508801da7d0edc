package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Palette lifecycle actions
type OpenPaletteAction struct{}

func (a OpenPaletteAction) Type() string { return "open_palette" }

type ClosePaletteAction struct{}

func (a ClosePaletteAction) Type() string { return "close_palette" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction requests an immediate query dispatch (Enter with no
// row highlighted)
type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// OpenSelectionAction activates the highlighted row (Enter with a
// highlight): opens a result's URL, or re-submits a history entry
type OpenSelectionAction struct{}

func (a OpenSelectionAction) Type() string { return "open_selection" }

// Application actions
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docfind/internal/ui/input/types"
)

// PaletteMode handles keys while the search palette is open. Unhandled
// keys fall through to the shared text input.
type PaletteMode struct {
	textInput *textinput.Model
}

func NewPaletteMode(ti *textinput.Model) *PaletteMode {
	return &PaletteMode{textInput: ti}
}

func (m *PaletteMode) Name() string {
	return "palette"
}

func (m *PaletteMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the view layer
	}
	return nil
}

func (m *PaletteMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *PaletteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "ctrl+k":
		// Dismiss and reset all query state
		return []types.Action{
			types.ClosePaletteAction{},
			types.ChangeModeAction{Mode: types.ModeClosed},
		}, true

	case "up":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "down":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "enter":
		if ctx.HasSelection() {
			return []types.Action{types.OpenSelectionAction{}}, true
		}
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{types.SubmitTextAction{Text: text}}, true

	default:
		// Let the input handler feed it to the text input
		return nil, false
	}
}

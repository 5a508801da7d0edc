package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"docfind/internal/ui/input/types"
)

// ClosedMode handles keys while the palette is dismissed
type ClosedMode struct{}

func NewClosedMode() *ClosedMode {
	return &ClosedMode{}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "ctrl+k", "/":
		return []types.Action{
			types.OpenPaletteAction{},
			types.ChangeModeAction{Mode: types.ModePalette},
		}, true
	}

	return nil, false
}

package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"docfind/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Open           bool
	InputView      string
	Query          string
	Loading        bool
	Results        []domain.SearchResult
	SelectedIndex  int // -1 when nothing is highlighted
	ShowingHistory bool
	History        []string
	Notice         string
	HaveSearched   bool
	ViewportOffset int
	ViewportRows   int
	ShowScores     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if !state.Open {
		return r.renderClosed(state)
	}
	return r.renderPalette(state)
}

// renderClosed draws the host screen with the palette hint bar
func (r *Renderer) renderClosed(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("docfind"))
	content.WriteString("\n")
	content.WriteString(r.styles.Dim.Render("Search your documentation corpus from the terminal."))
	content.WriteString("\n\n")

	hint := fmt.Sprintf("Press %s to search  •  %s quits",
		r.styles.HintKey.Render("ctrl+k"),
		r.styles.HintKey.Render("q"))
	content.WriteString(r.styles.Hint.Render(hint))

	return lipgloss.Place(state.Width, state.Height,
		lipgloss.Center, lipgloss.Center,
		content.String())
}

// renderPalette draws the centered search modal
func (r *Renderer) renderPalette(state ViewState) string {
	width := state.Width - 10
	if width > 72 {
		width = 72
	}
	if width < 24 {
		width = 24
	}

	content := &strings.Builder{}

	// Input line with a loading spinner while a request is in flight
	inputLine := r.styles.Prompt.Render("› ") + state.InputView
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		inputLine += " " + r.styles.Loading.Render(spinner[frame])
	}
	content.WriteString(inputLine)
	content.WriteString("\n")
	content.WriteString(r.styles.Dim.Render(strings.Repeat("─", width)))
	content.WriteString("\n")

	switch {
	case state.ShowingHistory:
		content.WriteString(r.renderHistory(state, width))
	default:
		content.WriteString(r.renderResults(state, width))
	}

	if state.Notice != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Notice.Render(truncate(state.Notice, width)))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("↑/↓ navigate  •  enter open  •  esc close"))

	modal := r.styles.Modal.Width(width + 2).Render(content.String())
	return lipgloss.Place(state.Width, state.Height,
		lipgloss.Center, lipgloss.Center,
		modal)
}

// renderHistory lists previous searches, most recent last
func (r *Renderer) renderHistory(state ViewState, width int) string {
	if len(state.History) == 0 {
		return r.styles.Dim.Render("Type to search.")
	}

	content := &strings.Builder{}
	content.WriteString(r.styles.HistoryHead.Render("Previous searches"))
	content.WriteString("\n")

	rows := visibleWindow(state, len(state.History))
	for i, idx := range rows {
		line := "  " + truncate(state.History[idx], width-2)
		if idx == state.SelectedIndex {
			line = r.styles.SelectedBg.Render(line)
		}
		content.WriteString(line)
		if i < len(rows)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}

// renderResults lists ranked results with highlighted snippets
func (r *Renderer) renderResults(state ViewState, width int) string {
	if len(state.Results) == 0 {
		if state.Loading {
			return r.styles.Dim.Render("Searching...")
		}
		if state.HaveSearched && state.Query != "" {
			return r.styles.Dim.Render("No results.")
		}
		return r.styles.Dim.Render("Type to search.")
	}

	content := &strings.Builder{}
	rows := visibleWindow(state, len(state.Results))
	for i, idx := range rows {
		res := state.Results[idx]

		url := truncate(res.URL, width-2)
		head := "  " + r.styles.ResultURL.Render(url)
		if state.ShowScores && res.Score > 0 {
			head += " " + r.styles.Score.Render(fmt.Sprintf("(%.2f)", res.Score))
		}

		snippet := "  " + r.renderSnippet(res.Snippet, width-2)

		if idx == state.SelectedIndex {
			head = r.styles.SelectedBg.Render("▸" + head[1:])
			snippet = r.styles.SelectedBg.Render(snippet)
		}

		content.WriteString(head)
		content.WriteString("\n")
		content.WriteString(snippet)
		if i < len(rows)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}

// renderSnippet draws pre + highlighted match + post, trimmed to fit
func (r *Renderer) renderSnippet(s domain.Snippet, width int) string {
	pre, text, post := s.Pre, s.Text, s.Post

	// Budget the context around the match
	remaining := width - len([]rune(text))
	if remaining < 0 {
		return r.styles.Match.Render(truncate(text, width))
	}
	if len([]rune(pre)) > remaining/2 {
		runes := []rune(pre)
		pre = "…" + string(runes[len(runes)-remaining/2:])
	}
	post = truncate(post, remaining-len([]rune(pre)))

	return r.styles.Snippet.Render(pre) +
		r.styles.Match.Render(text) +
		r.styles.Snippet.Render(post)
}

// visibleWindow returns the row indices inside the viewport
func visibleWindow(state ViewState, total int) []int {
	offset := state.ViewportOffset
	if offset < 0 {
		offset = 0
	}
	rows := state.ViewportRows
	if rows <= 0 {
		rows = total
	}
	end := offset + rows
	if end > total {
		end = total
	}
	indices := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		indices = append(indices, i)
	}
	return indices
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

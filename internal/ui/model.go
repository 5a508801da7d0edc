package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docfind/internal/config"
	"docfind/internal/domain"
	"docfind/internal/eventbus"
	"docfind/internal/search"
	"docfind/internal/ui/controller"
	"docfind/internal/ui/input"
	inputtypes "docfind/internal/ui/input/types"
	"docfind/internal/ui/selection"
	"docfind/internal/ui/views"
)

// maxVisibleRows caps how many rows the palette shows at once; the
// viewport offset slides the window so the highlight stays in view.
const maxVisibleRows = 6

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	searcher search.Searcher
	opener   Opener

	width  int
	height int
	open   bool
	notice string

	ctrl         *controller.Controller
	sel          *selection.State
	inputHandler *input.Handler
	renderer     *views.Renderer

	viewportOffset int
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, searcher search.Searcher, ctrl *controller.Controller) *Model {
	return &Model{
		bus:          bus,
		config:       cfg,
		searcher:     searcher,
		opener:       DefaultOpener,
		ctrl:         ctrl,
		sel:          selection.New(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
	}
}

// SetOpener overrides how result URLs are opened
func (m *Model) SetOpener(opener Opener) {
	m.opener = opener
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case debounceMsg:
		// Only the most recent keystroke's timer may dispatch
		if !m.open || !m.ctrl.DebounceElapsed(msg.tag) {
			return m, nil
		}
		return m, m.submit(msg.query)

	case resultsMsg:
		if m.ctrl.Apply(msg.seq, msg.query, msg.results) {
			m.sel.Reset()
			m.viewportOffset = 0
			m.notice = ""
		}
		return m, nil

	case searchErrMsg:
		m.ctrl.Fail(msg.seq, msg.query, msg.err)
		if msg.seq == m.ctrl.Seq() {
			m.notice = "Search failed, showing previous results"
		}
		return m, nil

	case openDoneMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Could not open %s", msg.url)
		}
		return m, nil

	case tickMsg:
		// Keep the spinner animated while the palette is up
		if m.open {
			return m, tick()
		}
		return m, nil

	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.notice = ev.Message
		}
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	}
}

// processAction executes a single action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.OpenPaletteAction:
		m.open = true
		m.notice = ""
		m.sel.Reset()
		m.viewportOffset = 0
		m.bus.Publish(eventbus.WidgetOpenedEvent{})
		return tick()

	case inputtypes.ClosePaletteAction:
		m.open = false
		m.notice = ""
		m.ctrl.Reset()
		m.sel.Reset()
		m.viewportOffset = 0
		m.bus.Publish(eventbus.WidgetClosedEvent{})
		return nil

	case inputtypes.NavigateAction:
		rows := m.rowCount()
		switch a.Direction {
		case "up":
			m.sel.Prev(rows)
		case "down":
			m.sel.Next(rows)
		}
		m.ensureVisible(rows)
		return nil

	case inputtypes.UpdateTextAction:
		// Restart the debounce window; older timers become stale
		m.sel.Reset()
		m.viewportOffset = 0
		tag := m.ctrl.Debounce(a.Text)
		return debounce(m.config.Debounce(), tag, a.Text)

	case inputtypes.SubmitTextAction:
		return m.submit(a.Text)

	case inputtypes.OpenSelectionAction:
		return m.openSelection()
	}

	return nil
}

// submit dispatches a query immediately; empty queries are ignored
func (m *Model) submit(query string) tea.Cmd {
	seq, ok := m.ctrl.Submit(query)
	if !ok {
		return nil
	}
	return m.searchCmd(seq, query)
}

// openSelection activates the highlighted row
func (m *Model) openSelection() tea.Cmd {
	idx, ok := m.sel.Index()
	if !ok {
		return nil
	}

	if m.showingHistory() {
		queries := m.ctrl.History()
		if idx >= len(queries) {
			return nil
		}
		query := queries[idx]
		m.inputHandler.SetText(query)
		m.ctrl.SetRawText(query)
		m.sel.Reset()
		m.viewportOffset = 0
		return m.submit(query)
	}

	results := m.ctrl.Results()
	if idx >= len(results) {
		return nil
	}
	url := results[idx].URL
	m.bus.Publish(eventbus.ResultOpenedEvent{URL: url})
	opener := m.opener
	return func() tea.Msg {
		return openDoneMsg{url: url, err: opener(url)}
	}
}

// searchCmd performs the remote call off the update loop. The response
// carries its sequence number so stale answers can be dropped on arrival.
func (m *Model) searchCmd(seq uint64, query string) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		results, err := searcher.Search(context.Background(), query)
		if err != nil {
			return searchErrMsg{seq: seq, query: query, err: err}
		}
		return resultsMsg{seq: seq, query: query, results: results}
	}
}

// showingHistory reports whether the palette is listing past searches
// instead of results (empty input, history enabled)
func (m *Model) showingHistory() bool {
	return m.open &&
		m.config.UISettings.ShowHistory &&
		m.ctrl.RawText() == "" &&
		len(m.ctrl.Results()) == 0
}

// rowCount is the number of navigable rows in the current list
func (m *Model) rowCount() int {
	if m.showingHistory() {
		return len(m.ctrl.History())
	}
	return len(m.ctrl.Results())
}

// ensureVisible slides the viewport so the highlighted row is shown,
// nearest edge first, with no animation
func (m *Model) ensureVisible(rows int) {
	idx, ok := m.sel.Index()
	if !ok {
		m.viewportOffset = 0
		return
	}
	if idx < m.viewportOffset {
		m.viewportOffset = idx
	} else if idx >= m.viewportOffset+maxVisibleRows {
		m.viewportOffset = idx - maxVisibleRows + 1
	}
	if m.viewportOffset > rows-1 {
		m.viewportOffset = 0
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Open:           m.open,
		Query:          m.ctrl.RawText(),
		Loading:        m.ctrl.Loading(),
		Results:        m.ctrl.Results(),
		SelectedIndex:  -1,
		ShowingHistory: m.showingHistory(),
		History:        m.ctrl.History(),
		Notice:         m.notice,
		HaveSearched:   m.ctrl.HaveSearched(),
		ViewportOffset: m.viewportOffset,
		ViewportRows:   maxVisibleRows,
		ShowScores:     m.config.UISettings.ShowScores,
	}
	if idx, ok := m.sel.Index(); ok {
		state.SelectedIndex = idx
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.InputView = ti.View()
	}

	return m.renderer.Render(state)
}

// Open reports whether the palette is currently up
func (m *Model) Open() bool {
	return m.open
}

// Results exposes displayed results for inspection in tests
func (m *Model) Results() []domain.SearchResult {
	return m.ctrl.Results()
}

// modelContext implements the input context over the model
type modelContext struct {
	m *Model
}

func (c *modelContext) ResultCount() int {
	return c.m.rowCount()
}

func (c *modelContext) HasSelection() bool {
	_, ok := c.m.sel.Index()
	return ok
}

func (c *modelContext) InputText() string {
	return c.m.ctrl.RawText()
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// debounce schedules a tagged timer; the tag is checked when it fires
func debounce(delay time.Duration, tag uint64, query string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{tag: tag, query: query}
	})
}

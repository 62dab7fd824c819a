// Package tui hosts the wizard application: the bubbletea model that
// owns the traversal state, renders prompt widgets into the compiled
// wizard layout, and routes keys between the current prompt, the
// details panel, and the completion dialog.
package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/planterm/planterm/internal/logger"
	"github.com/planterm/planterm/internal/plan"
	"github.com/planterm/planterm/internal/state"
	"github.com/planterm/planterm/internal/traverse"
	"github.com/planterm/planterm/internal/tui/theme"
	"github.com/planterm/planterm/internal/tui/wizard"
)

// CancelCode is the exit code recorded when the user aborts the wizard
// with ctrl+c, following the interrupt convention.
const CancelCode = 130

// Result is the outcome of a wizard run.
type Result struct {
	// Code is the process exit code the run asks for: 0 after the
	// completion dialog confirms, CancelCode after ctrl+c.
	Code int

	// Cancelled reports the run ended without confirmation. No values
	// are carried in that case.
	Cancelled bool

	// Values are the collected answers in prompt order.
	Values []traverse.Answer
}

// finishMsg ends the program with an exit code. The completion
// dialog's yes action produces it through the Finish dep.
type finishMsg struct {
	code int
}

// App is the bubbletea model driving one wizard session. It implements
// the layout's SectionRenderer and DetailsSource contracts itself, so
// every per-frame predicate reads live traversal and toggle state.
type App struct {
	def    *plan.Definition
	trav   *traverse.Traverser
	layout *wizard.Layout

	// widget is the input control for the current prompt; widgetPos is
	// the flat prompt index it was built for, -1 once none remains.
	widget    promptWidget
	widgetPos int

	// detailsOpen is the user's F3 toggle, persisted across runs.
	// detailsFocused routes keys to the details viewport after F2.
	detailsOpen    bool
	detailsFocused bool

	// Rendered details markdown, memoized per prompt body and width so
	// the per-frame content read stays cheap.
	detailsRaw      string
	detailsRendered string
	detailsWidth    int

	dataDir string

	width    int
	height   int
	result   Result
	done     bool
	quitting bool
}

// NewApp compiles the plan into a ready-to-run application model.
// Every construction-time plan error (missing terminal section,
// malformed options, unknown action kinds) surfaces here; a returned
// App renders and routes keys without further structural failures.
func NewApp(def *plan.Definition, dataDir string) (*App, error) {
	a := &App{
		def:       def,
		trav:      traverse.New(def),
		dataDir:   dataDir,
		widgetPos: -1,
		width:     80,
		height:    24,
	}
	a.detailsOpen = state.Load(dataDir).Details.Visible

	layout, err := wizard.NewFactory(wizard.Deps{
		Traversal: a.trav,
		Renderer:  a,
		Details:   a,
		Finish:    finishCmd,
	}).CreateWizardLayout(def)
	if err != nil {
		return nil, err
	}
	a.layout = layout
	return a, nil
}

func finishCmd(code int) tea.Cmd {
	return func() tea.Msg { return finishMsg{code: code} }
}

// Result returns the run's outcome; meaningful once the program quits.
func (a *App) Result() Result { return a.result }

// Layout exposes the compiled wizard screen, mainly for tests.
func (a *App) Layout() *wizard.Layout { return a.layout }

// Traverser exposes the run's traversal state.
func (a *App) Traverser() *traverse.Traverser { return a.trav }

// Init focuses the first prompt's widget.
func (a *App) Init() tea.Cmd {
	return a.syncWidget()
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.PasteMsg:
		return a.handlePaste(msg)

	case finishMsg:
		if !a.done {
			a.done = true
			a.result = Result{Code: msg.code, Values: a.trav.Values()}
			logger.Info("wizard %q confirmed, %d values collected", a.def.Title, len(a.result.Values))
		}
		a.quitting = true
		return a, tea.Quit
	}

	// Everything else (cursor blinks and the like) belongs to the
	// focused widget.
	if a.widget != nil {
		return a, a.widget.Update(msg)
	}
	return a, nil
}

// handleKeyPress routes a key by priority: global keys, then the
// completion dialog while visible, then the focused details viewport,
// then the current prompt's widget.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a.cancel()
	case "f3":
		a.toggleDetails()
		return a, nil
	case "f2":
		if a.DetailsVisible() {
			a.detailsFocused = !a.detailsFocused
		}
		return a, nil
	}

	if dialog := a.layout.Dialog(); dialog.Visible() {
		cmd := dialog.Update(msg)
		// The back action may have reopened a prompt.
		return a, tea.Batch(cmd, a.syncWidget())
	}

	if a.detailsFocused {
		if msg.String() == "esc" {
			a.detailsFocused = false
			return a, nil
		}
		return a, a.layout.Details().Update(msg)
	}

	if a.widget == nil {
		return a, nil
	}
	if msg.String() == "enter" {
		return a, a.submitAnswer()
	}
	return a, a.widget.Update(msg)
}

// handlePaste forwards paste content to the focused widget. The dialog
// and the details viewport have no text input, so paste is consumed
// while either holds focus.
func (a *App) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	if a.layout.Dialog().Visible() || a.detailsFocused {
		return a, nil
	}
	if a.widget != nil {
		return a, a.widget.Update(msg)
	}
	return a, nil
}

func (a *App) cancel() (tea.Model, tea.Cmd) {
	if !a.done {
		a.done = true
		a.result = Result{Code: CancelCode, Cancelled: true}
		logger.Info("wizard %q cancelled", a.def.Title)
	}
	a.quitting = true
	return a, tea.Quit
}

// toggleDetails flips the panel preference and persists it so the next
// run starts the same way.
func (a *App) toggleDetails() {
	a.detailsOpen = !a.detailsOpen
	if !a.DetailsVisible() {
		a.detailsFocused = false
	}
	a.saveUIState()
}

func (a *App) saveUIState() {
	st := state.Load(a.dataDir)
	st.Details.Visible = a.detailsOpen
	if err := state.Save(a.dataDir, st); err != nil {
		logger.Warn("failed to save UI state: %v", err)
	}
}

// submitAnswer records the widget's value and moves on. A select
// prompt whose filter matches nothing stays put.
func (a *App) submitAnswer() tea.Cmd {
	pos := a.trav.Current()
	if pos == nil || a.widget == nil {
		return nil
	}
	value := a.widget.Value()
	if value == "" && pos.Prompt.Kind == plan.KindSelect {
		return nil
	}
	a.trav.Advance(value)
	return a.syncWidget()
}

// syncWidget rebuilds the prompt widget after the traversal cursor
// moved. A reopened prompt is prefilled with its recorded answer, a
// first visit with the prompt's default.
func (a *App) syncWidget() tea.Cmd {
	pos := a.trav.Current()
	if pos == nil {
		a.widget = nil
		a.widgetPos = -1
		return nil
	}
	if pos.Index == a.widgetPos {
		return nil
	}
	prefill, ok := a.trav.Value(pos.Prompt.Name)
	if !ok {
		prefill = pos.Prompt.Default
	}
	a.widget = newPromptWidget(pos.Prompt, prefill)
	a.widgetPos = pos.Index
	return a.widget.Focus()
}

// HasDetails reports whether the current prompt carries details; the
// hint toolbar is visible exactly while this holds.
func (a *App) HasDetails() bool { return a.trav.HasDetails() }

// DetailsVisible gates the panel itself: the prompt must carry details
// and the user toggle must be open, so an open panel always has
// something to show.
func (a *App) DetailsVisible() bool { return a.detailsOpen && a.trav.HasDetails() }

// DetailsTitle names the panel after the current prompt.
func (a *App) DetailsTitle() string {
	title, _ := a.trav.Details()
	return title
}

// DetailsContent returns the current prompt's details rendered as
// markdown, memoized per body and width.
func (a *App) DetailsContent() string {
	_, body := a.trav.Details()
	if body == "" {
		return ""
	}
	width := a.detailsContentWidth()
	if body == a.detailsRaw && width == a.detailsWidth {
		return a.detailsRendered
	}
	a.detailsRaw = body
	a.detailsWidth = width
	a.detailsRendered = renderMarkdown(body, width)
	return a.detailsRendered
}

func (a *App) detailsContentWidth() int {
	r := a.layout.Regions(uv.Rect(0, 0, a.width, a.height))
	if w := r.Details.Dx(); w > 0 {
		return w
	}
	return a.width
}

// View renders the current frame.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		// Minimal view on the way out so the terminal restores cleanly.
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	view.Cursor = a.layout.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Package tui provides the Bubble Tea presentation of the tutorial.
// It translates terminal input to controller calls and draws the frames
// the controller renders.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vim-quest/internal/config"
	"github.com/vovakirdan/vim-quest/internal/controller"
	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/levels"
)

// frameSink receives frames from the controller. The model is copied on
// every update, so the sink lives behind a pointer.
type frameSink struct {
	frame controller.Frame
}

func (s *frameSink) Render(f controller.Frame) { s.frame = f }

// Options configures a Model.
type Options struct {
	UI     config.UIConfig
	Logger *log.Logger
	Start  int // Index of the first stage
}

// Model is the Bubble Tea model for a tutorial session.
type Model struct {
	ctrl     *controller.Controller
	sink     *frameSink
	input    textinput.Model
	bar      progress.Model
	help     help.Model
	keys     NavKeyMap
	styles   Styles
	ui       config.UIConfig
	width    int
	height   int
	quitting bool
}

// NewModel creates a session over the built-in stages and starts the first one.
func NewModel(opts Options) (Model, error) {
	if opts.UI.FeedLines == 0 {
		opts.UI = config.DefaultConfig().UI
	}

	sink := &frameSink{}
	ctrl, err := controller.New(levels.Builtin(),
		controller.WithRenderer(sink),
		controller.WithLogger(opts.Logger),
	)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Prompt = ":"
	input.CharLimit = 64
	input.Placeholder = "wq"

	bar := progress.New(
		progress.WithSolidFill(opts.UI.Theme.Progress),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)

	m := Model{
		ctrl:   ctrl,
		sink:   sink,
		input:  input,
		bar:    bar,
		help:   help.New(),
		keys:   DefaultNavKeyMap(),
		styles: NewStyles(opts.UI),
		ui:     opts.UI,
	}
	ctrl.Setup(opts.Start)
	m.sync()
	return m, nil
}

// Controller exposes the session controller.
func (m Model) Controller() *controller.Controller { return m.ctrl }

// Frame returns the last frame rendered by the controller.
func (m Model) Frame() controller.Frame { return m.sink.frame }

// CommandInput returns the current command-line text.
func (m Model) CommandInput() string { return m.input.Value() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(40, msg.Width-20))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// The command-line box has focus while it is open
	if m.sink.frame.CommandLineVisible {
		return m.handleCommandInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Advance()
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Retreat()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.ResetCurrent()
	case key.Matches(msg, m.keys.Complete):
		m.ctrl.CompleteAndAdvance()
	default:
		for _, ev := range KeyEvents(msg) {
			m.ctrl.HandleKey(ev)
		}
	}
	cmd := m.sync()
	return m, cmd
}

// handleCommandInput routes keys while the command line is open.
func (m Model) handleCommandInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		m.ctrl.HandleCommandSubmit(text)
		cmd := m.sync()
		return m, cmd
	case tea.KeyEsc:
		m.ctrl.HandleEscape()
		cmd := m.sync()
		return m, cmd
	}

	// The controller ignores keys from the command input; the box edits them
	for _, ev := range KeyEvents(msg) {
		ev.Source = core.SourceCommandInput
		m.ctrl.HandleKey(ev)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sync aligns the widgets with the last rendered frame.
func (m *Model) sync() tea.Cmd {
	f := m.sink.frame
	m.keys.Complete.SetEnabled(f.CompleteVisible)

	if !f.CommandLineVisible {
		m.input.Blur()
		m.input.Reset()
		return nil
	}
	if f.FocusCommandLine {
		m.input.Reset()
		return m.input.Focus()
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.sink.frame
	sections := []string{m.styles.renderHeader(f)}

	switch {
	case f.Grid != nil:
		sections = append(sections, m.styles.renderGrid(*f.Grid))
	case f.Buffer != nil:
		sections = append(sections, m.styles.renderBuffer(*f.Buffer))
	}

	if f.CommandLineVisible {
		sections = append(sections, m.input.View())
	}
	if f.CompleteVisible {
		sections = append(sections, m.styles.Complete.Render("Stage complete! Press tab to continue."))
	}

	sections = append(sections,
		"",
		m.bar.ViewAs(f.Progress.Ratio())+"  "+f.Progress.String(),
		"",
		m.styles.renderFeed(f.Feed[:min(len(f.Feed), m.ui.FeedLines)]),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

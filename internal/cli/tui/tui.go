// Package tui provides the terminal UI for browsing and running the tools.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lotayaai/lotaya-io/internal/modal"
	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// transitionDuration is how long the modal entrance and exit take.
const transitionDuration = 150 * time.Millisecond

// transitionDoneMsg ends the current modal transition.
type transitionDoneMsg struct{}

// resultMsg carries the outcome of a request. applied is false when the
// form dropped it.
type resultMsg struct {
	form    *tools.FormState
	applied bool
}

// Model represents the state of the TUI application.
type Model struct {
	registry *tools.Registry
	caller   tools.Caller
	log      *slog.Logger
	ctrl     *modal.Controller

	width  int
	height int

	tools   list.Model
	inputs  []textinput.Model
	fields  []tools.FieldSpec
	focus   int
	spinner spinner.Model
	cancel  context.CancelFunc

	help     help.Model
	keyMap   KeyMap
	showHelp bool
}

type toolItem struct {
	d tools.Descriptor
}

func (i toolItem) Title() string       { return i.d.Name }
func (i toolItem) Description() string { return i.d.Description }
func (i toolItem) FilterValue() string { return i.d.Name + " " + i.d.ID }

// New creates a new TUI model.
func New(registry *tools.Registry, caller tools.Caller, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Scope("tui"))

	all := registry.All()
	items := make([]list.Item, 0, len(all))
	for _, d := range all {
		items = append(items, toolItem{d: d})
	}

	toolList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	toolList.Title = "Lotaya AI Tools"
	toolList.SetShowHelp(false)
	toolList.SetShowStatusBar(false)

	return Model{
		registry: registry,
		caller:   caller,
		log:      log,
		ctrl:     modal.NewController(registry, nil, log),
		tools:    toolList,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		keyMap:   DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tools.SetSize(m.width-4, m.height-4)
		return m, nil

	case transitionDoneMsg:
		wasClosing := m.ctrl.Phase() == modal.PhaseClosing
		m.ctrl.TransitionComplete()
		if wasClosing {
			m.inputs, m.fields = nil, nil
		}
		return m, nil

	case resultMsg:
		s, ok := m.ctrl.Active()
		if !ok || s.Form != msg.form || !msg.applied {
			m.log.Debug("dropped stale result")
			return m, nil
		}
		if s.Form.Status() == tools.StatusFailed {
			m.focusField(0)
		}
		return m, nil

	case spinner.TickMsg:
		if s, ok := m.ctrl.Active(); ok && s.Form.Status() == tools.StatusSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.shutdown()
			return m, tea.Quit
		}
		if _, ok := m.ctrl.Active(); ok {
			return m.updateModal(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tools.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.tools, cmd = m.tools.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keyMap.Open):
		item, ok := m.tools.SelectedItem().(toolItem)
		if !ok {
			return m, nil
		}
		return m.open(item.d.ID)
	}

	var cmd tea.Cmd
	m.tools, cmd = m.tools.Update(msg)
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.ctrl.Interactive() {
		return m, nil
	}
	s, _ := m.ctrl.Active()

	if key.Matches(msg, m.keyMap.Close) {
		return m.close()
	}

	switch s.Form.Status() {
	case tools.StatusSubmitting:
		return m, nil

	case tools.StatusSucceeded:
		switch {
		case key.Matches(msg, m.keyMap.TryAnother):
			if err := s.Form.TryAnother(); err != nil {
				m.log.Debug("try another rejected", logger.Error(err))
				return m, nil
			}
			m.buildInputs(s.Form)
			return m, textinput.Blink
		case key.Matches(msg, m.keyMap.Quit):
			return m.close()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submit(s.Form)
	case msg.Type == tea.KeyEnter:
		if m.focus == len(m.inputs)-1 {
			return m.submit(s.Form)
		}
		m.focusField(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keyMap.Next):
		m.focusField(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keyMap.Prev):
		m.focusField(m.focus - 1)
		return m, nil
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) open(id string) (tea.Model, tea.Cmd) {
	s, err := m.ctrl.Open(id)
	if err != nil {
		m.log.Warn("open tool", slog.String("tool", id), logger.Error(err))
		return m, nil
	}
	m.buildInputs(s.Form)
	return m, tea.Batch(transition(), textinput.Blink)
}

func (m Model) close() (tea.Model, tea.Cmd) {
	if !m.ctrl.RequestClose() {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	return m, transition()
}

// submit copies the inputs into the form and sends one request. A
// validation failure leaves the form failed without a request.
func (m Model) submit(form *tools.FormState) (tea.Model, tea.Cmd) {
	for i, f := range m.fields {
		if err := form.SetField(f.Name, m.inputs[i].Value()); err != nil {
			m.log.Debug("set field", slog.String("field", f.Name), logger.Error(err))
			return m, nil
		}
	}

	attempt, err := form.Begin()
	if err != nil {
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	caller := m.caller
	request := func() tea.Msg {
		defer cancel()
		applied, _ := tools.Perform(ctx, caller, form, attempt)
		return resultMsg{form: form, applied: applied}
	}
	return m, tea.Batch(m.spinner.Tick, request)
}

func (m *Model) buildInputs(form *tools.FormState) {
	values := form.Snapshot().Fields
	m.inputs, m.fields = nil, nil

	for _, f := range form.Tool().Form.Schema() {
		if f.Hidden {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 500
		ti.Width = 48
		ti.Placeholder = placeholder(f)
		ti.SetValue(values.Display(f.Name))
		m.inputs = append(m.inputs, ti)
		m.fields = append(m.fields, f)
	}
	m.focusField(0)
}

func (m *Model) focusField(i int) {
	if len(m.inputs) == 0 {
		return
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

func (m *Model) shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctrl.Unmount()
}

func placeholder(f tools.FieldSpec) string {
	if len(f.Options) > 0 {
		values := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			values = append(values, o.Value)
		}
		hint := strings.Join(values, " | ")
		if f.Kind == tools.KindMultiChoice {
			hint = "comma separated: " + hint
		}
		return hint
	}
	return f.Placeholder
}

func transition() tea.Cmd {
	return tea.Tick(transitionDuration, func(time.Time) tea.Msg {
		return transitionDoneMsg{}
	})
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(1, 2).
			Width(64)
)

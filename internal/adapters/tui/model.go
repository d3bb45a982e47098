// Package tui implements the interactive journal screen using Bubbletea.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/ports"
	"github.com/xvierd/daylog/internal/timefmt"
)

// Lines taken by everything except the reel and the log body:
// title + margin, current activity (2), sleep line, two spacers,
// log header, help line, error line.
const (
	chromeLines  = 10
	minLogLines  = 3
	maxReelWidth = 40
)

// tickMsg refreshes the elapsed time of the running activity.
type tickMsg time.Time

// Model represents the journal screen state.
type Model struct {
	state   domain.State
	confirm ports.ConfirmFunc
	clock   ports.Clock
	now     time.Time

	reel        Reel
	visibleRows int
	rowHeight   int
	log         viewport.Model
	help        help.Model
	keys        keyMap
	filter      textinput.Model
	filtering   bool

	theme     config.ThemeConfig
	width     int
	height    int
	lastError error
}

// NewModel creates a new journal model showing initial and offering the
// activities of catalog on the reel.
func NewModel(initial domain.State, catalog domain.Catalog, reel config.ReelConfig, theme *config.ThemeConfig) Model {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "търси"
	filter.CharLimit = 64

	visible := reel.VisibleRows
	if visible < 1 {
		visible = 1
	}
	rowHeight := reel.RowHeight
	if rowHeight < 1 {
		rowHeight = 1
	}

	m := Model{
		state:       initial,
		reel:        NewReel(catalog, rowHeight),
		visibleRows: visible,
		rowHeight:   rowHeight,
		log:         viewport.New(0, 0),
		help:        help.New(),
		keys:        defaultKeyMap(),
		filter:      filter,
		theme:       resolveTheme(theme),
		clock:       ports.SystemClock,
	}
	m.now = m.clock.Now()
	m.refreshLog()
	return m
}

// SetConfirm sets the callback invoked when the user confirms the centred activity.
func (m *Model) SetConfirm(confirm ports.ConfirmFunc) {
	m.confirm = confirm
}

// SetClock sets the clock that drives the elapsed time of the running
// activity. A nil clock restores the wall clock.
func (m *Model) SetClock(clock ports.Clock) {
	if clock == nil {
		clock = ports.SystemClock
	}
	m.clock = clock
	m.now = clock.Now()
}

// State returns the snapshot currently displayed.
func (m Model) State() domain.State {
	return m.state
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.reel.ScrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.reel.ScrollBy(1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tickMsg:
		m.now = m.clock.Now()
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Confirm):
		m.confirmSelection()
	case key.Matches(msg, m.keys.Up):
		m.reel.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.reel.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.reel.ScrollBy(-m.reel.PageRows())
	case key.Matches(msg, m.keys.PageDown):
		m.reel.ScrollBy(m.reel.PageRows())
	case key.Matches(msg, m.keys.Top):
		m.reel.ScrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.reel.ScrollTo(m.reel.Len() - 1)
	case key.Matches(msg, m.keys.LogUp):
		m.log.HalfViewUp()
	case key.Matches(msg, m.keys.LogDown):
		m.log.HalfViewDown()
	case key.Matches(msg, m.keys.Search):
		m.filtering = true
		m.filter.SetValue("")
		return m, m.filter.Focus()
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.reel.JumpTo(m.filter.Value())
		m.closeFilter()
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		m.closeFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *Model) closeFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

// confirmSelection hands the centred activity to the confirm callback and
// replaces the snapshot with the returned state.
func (m *Model) confirmSelection() {
	if m.confirm == nil {
		return
	}
	selected := m.reel.Centered()
	if selected == "" {
		return
	}
	next, err := m.confirm(selected)
	if err != nil {
		m.lastError = err
		return
	}
	m.lastError = nil
	m.state = next
	if m.state.HasActive() {
		m.now = m.state.Active.Start
	}
	m.refreshLog()
}

// layout sizes the reel and the log viewport to the terminal.
func (m *Model) layout() {
	reelHeight := m.visibleRows * m.rowHeight
	if avail := m.height - chromeLines - minLogLines; reelHeight > avail {
		reelHeight = avail
	}
	if reelHeight < m.rowHeight {
		reelHeight = m.rowHeight
	}
	m.reel.SetSize(min(m.width, maxReelWidth), reelHeight)

	m.log.Width = m.width
	m.log.Height = max(1, m.height-chromeLines-reelHeight)
	m.help.Width = m.width
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.log.SetContent(renderLog(m.state.Log, m.theme))
	m.log.GotoTop()
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s daylog", m.theme.IconApp)))

	sections = append(sections, viewCurrentActivity(m.state.Active, m.now, m.theme))
	sections = append(sections, viewSleepInfo(m.state.Sleep, m.theme))
	sections = append(sections, "")

	sections = append(sections, m.reel.View(m.theme))
	sections = append(sections, "")

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	header := labelHistory
	if len(m.state.Log) > 0 {
		header = fmt.Sprintf("%s · %s", labelHistory, timefmt.Duration(m.state.TotalLogged()))
	}
	sections = append(sections, headerStyle.Render(header))
	sections = append(sections, m.log.View())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	if m.filtering {
		sections = append(sections, m.filter.View())
	} else {
		sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	}

	if m.lastError != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorError))
		sections = append(sections, errStyle.Render("Грешка: "+m.lastError.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

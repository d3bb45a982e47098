package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func keyPress(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

var scenarioCatalog = domain.NewCatalog([]string{"Работа", "Почивка", "Лягане", "Ставане"}, "Лягане", "Ставане")

func at(h, m int) time.Time {
	return time.Date(2024, 3, 12, h, m, 0, 0, time.Local)
}

// engineConfirm runs the real reducer, reading times from the given queue.
func engineConfirm(times ...time.Time) (func(domain.ActivityName) (domain.State, error), *[]domain.ActivityName) {
	var state domain.State
	var selected []domain.ActivityName
	return func(name domain.ActivityName) (domain.State, error) {
		now := times[len(selected)]
		selected = append(selected, name)
		state, _ = state.Confirm(name, now, scenarioCatalog.Sleep)
		return state, nil
	}, &selected
}

func newSizedModel(confirm func(domain.ActivityName) (domain.State, error)) Model {
	m := NewModel(domain.State{}, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, nil)
	m.SetConfirm(confirm)
	return send(m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestModel_ViewLoadingBeforeSize(t *testing.T) {
	m := NewModel(domain.State{}, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, nil)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestModel_ViewIdle(t *testing.T) {
	m := newSizedModel(nil)
	view := m.View()
	for _, want := range []string{"daylog", labelIdle, labelNoLog, "▸ Лягане"} {
		if !strings.Contains(view, want) {
			t.Errorf("idle view should contain %q", want)
		}
	}
}

func TestModel_PartialThemeResolved(t *testing.T) {
	m := NewModel(domain.State{}, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, &config.ThemeConfig{IconPointer: ">"})
	if m.theme.IconPointer != ">" {
		t.Errorf("custom pointer lost: %q", m.theme.IconPointer)
	}
	if m.theme.ColorActive != config.DefaultThemeConfig().ColorActive {
		t.Errorf("empty colour not resolved: %q", m.theme.ColorActive)
	}
}

// ---------------------------------------------------------------------------
// Reel navigation
// ---------------------------------------------------------------------------

func TestModel_NavigationKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want domain.ActivityName
	}{
		{"mount centres middle", nil, "Лягане"},
		{"k moves up", []string{"k"}, "Почивка"},
		{"up arrow", []string{"up"}, "Почивка"},
		{"j moves down", []string{"j"}, "Ставане"},
		{"down arrow clamps", []string{"down", "down"}, "Ставане"},
		{"g jumps to first", []string{"g"}, "Работа"},
		{"home jumps to first", []string{"home"}, "Работа"},
		{"G jumps to last", []string{"g", "G"}, "Ставане"},
		{"end jumps to last", []string{"g", "end"}, "Ставане"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSizedModel(nil)
			for _, k := range tt.keys {
				m = send(m, keyPress(k))
			}
			if got := m.reel.Centered(); got != tt.want {
				t.Errorf("Centered() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModel_MouseWheelScrollsReel(t *testing.T) {
	m := newSizedModel(nil)
	m = send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.reel.Centered(); got != "Почивка" {
		t.Errorf("wheel up: Centered() = %q", got)
	}
	m = send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.reel.Centered(); got != "Ставане" {
		t.Errorf("wheel down: Centered() = %q", got)
	}
	m = send(m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelUp})
	if got := m.reel.Centered(); got != "Ставане" {
		t.Errorf("release should not scroll: Centered() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// Confirm
// ---------------------------------------------------------------------------

func TestModel_ConfirmScenario(t *testing.T) {
	wake := at(6, 45).AddDate(0, 0, 1)
	confirm, selected := engineConfirm(at(8, 0), at(22, 30), wake)
	m := newSizedModel(confirm)

	// Работа at t0
	m = send(m, keyPress("g"), keyPress("enter"))
	st := m.State()
	if st.Active == nil || st.Active.Name != "Работа" || !st.Active.Start.Equal(at(8, 0)) {
		t.Fatalf("after first confirm Active = %+v", st.Active)
	}
	if len(st.Log) != 0 {
		t.Errorf("log should be empty, got %d entries", len(st.Log))
	}

	// Лягане at t1, confirmed with space
	m = send(m, keyPress("j"), keyPress("j"), keyPress("space"))
	st = m.State()
	if len(st.Log) != 1 || st.Log[0].Name != "Работа" || !st.Log[0].End.Equal(at(22, 30)) {
		t.Fatalf("after second confirm Log = %+v", st.Log)
	}
	if st.Sleep != nil {
		t.Error("no sleep summary expected yet")
	}

	// Ставане at t2
	m = send(m, keyPress("j"), keyPress("enter"))
	st = m.State()
	if len(st.Log) != 2 || st.Log[0].Name != "Лягане" || st.Log[1].Name != "Работа" {
		t.Fatalf("after third confirm Log = %+v", st.Log)
	}
	if st.Sleep == nil {
		t.Fatal("expected a sleep summary")
	}
	if want := 8*time.Hour + 15*time.Minute; st.Sleep.Duration != want {
		t.Errorf("sleep duration = %v, want %v", st.Sleep.Duration, want)
	}

	want := []domain.ActivityName{"Работа", "Лягане", "Ставане"}
	if len(*selected) != len(want) {
		t.Fatalf("confirm called %d times, want %d", len(*selected), len(want))
	}
	for i := range want {
		if (*selected)[i] != want[i] {
			t.Errorf("confirm #%d got %q, want %q", i, (*selected)[i], want[i])
		}
	}

	view := m.View()
	for _, s := range []string{"Ставане", "Лягане  22:30 – 06:45", "8 ч 15 мин"} {
		if !strings.Contains(view, s) {
			t.Errorf("view should contain %q", s)
		}
	}
}

func TestModel_ConfirmWithoutCallbackIsNoop(t *testing.T) {
	m := newSizedModel(nil)
	m = send(m, keyPress("enter"))
	if m.State().Active != nil {
		t.Error("confirm without a callback should not change state")
	}
}

func TestModel_ConfirmBeforeLayoutUsesFirstEntry(t *testing.T) {
	var got domain.ActivityName
	m := NewModel(domain.State{}, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, nil)
	m.SetConfirm(func(name domain.ActivityName) (domain.State, error) {
		got = name
		return domain.State{Active: &domain.ActiveEntry{Name: name, Start: at(9, 0)}}, nil
	})
	m = send(m, keyPress("enter"))
	if got != "Работа" {
		t.Errorf("confirmed %q before layout, want %q", got, "Работа")
	}
}

func TestModel_ConfirmErrorKeepsState(t *testing.T) {
	initial := domain.State{Active: &domain.ActiveEntry{Name: "Работа", Start: at(8, 0)}}
	m := NewModel(initial, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, nil)
	m.SetConfirm(func(domain.ActivityName) (domain.State, error) {
		return domain.State{}, errors.New("storage unavailable")
	})
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 30}, keyPress("enter"))

	if m.State().Active == nil || m.State().Active.Name != "Работа" {
		t.Errorf("state changed after a failed confirm: %+v", m.State().Active)
	}
	if m.lastError == nil {
		t.Fatal("lastError should be set")
	}
	if !strings.Contains(m.View(), "storage unavailable") {
		t.Error("view should show the error")
	}
}

func TestModel_SuccessfulConfirmClearsError(t *testing.T) {
	fail := true
	m := newSizedModel(func(name domain.ActivityName) (domain.State, error) {
		if fail {
			return domain.State{}, errors.New("boom")
		}
		return domain.State{Active: &domain.ActiveEntry{Name: name, Start: at(9, 0)}}, nil
	})
	m = send(m, keyPress("enter"))
	if m.lastError == nil {
		t.Fatal("expected an error")
	}
	fail = false
	m = send(m, keyPress("enter"))
	if m.lastError != nil {
		t.Errorf("lastError = %v, want nil", m.lastError)
	}
}

// ---------------------------------------------------------------------------
// Find
// ---------------------------------------------------------------------------

func TestModel_FindJumpsToMatch(t *testing.T) {
	m := newSizedModel(nil)
	m = send(m, keyPress("/"))
	if !m.filtering {
		t.Fatal("/ should open the filter")
	}
	m = send(m, keyPress("Почи"), keyPress("enter"))
	if m.filtering {
		t.Error("enter should close the filter")
	}
	if got := m.reel.Centered(); got != "Почивка" {
		t.Errorf("Centered() = %q, want %q", got, "Почивка")
	}
}

func TestModel_FindKeysDoNotLeak(t *testing.T) {
	var called bool
	m := newSizedModel(func(name domain.ActivityName) (domain.State, error) {
		called = true
		return domain.State{}, nil
	})
	m = send(m, keyPress("/"), keyPress("q"), keyPress("j"), keyPress("esc"))
	if m.filtering {
		t.Error("esc should close the filter")
	}
	if got := m.reel.Centered(); got != "Лягане" {
		t.Errorf("typing in the filter moved the reel to %q", got)
	}
	if called {
		t.Error("filter input must not confirm")
	}
	if m.filter.Value() != "" {
		t.Errorf("filter value = %q, want cleared", m.filter.Value())
	}
}

func TestModel_FindNoMatchLeavesReel(t *testing.T) {
	m := newSizedModel(nil)
	m = send(m, keyPress("/"), keyPress("zzz"), keyPress("enter"))
	if got := m.reel.Centered(); got != "Лягане" {
		t.Errorf("Centered() = %q, want unchanged", got)
	}
}

// ---------------------------------------------------------------------------
// Misc keys and messages
// ---------------------------------------------------------------------------

func TestModel_QuitKey(t *testing.T) {
	m := newSizedModel(nil)
	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newSizedModel(nil)
	m = send(m, keyPress("?"))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	m = send(m, keyPress("?"))
	if m.help.ShowAll {
		t.Error("second ? should collapse help")
	}
}

func TestModel_HelpIsBulgarian(t *testing.T) {
	m := newSizedModel(nil)
	view := m.View()
	for _, want := range []string{"започни", "търси", "изход"} {
		if !strings.Contains(view, want) {
			t.Errorf("short help should contain %q", want)
		}
	}

	m = send(m, keyPress("?"))
	if !strings.Contains(m.View(), "дневник нагоре") {
		t.Error("full help should describe the log keys")
	}
}

func TestModel_TickRefreshesElapsed(t *testing.T) {
	now := at(9, 0)
	initial := domain.State{Active: &domain.ActiveEntry{Name: "Работа", Start: at(8, 0)}}
	m := NewModel(initial, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, nil)
	m.SetClock(ports.ClockFunc(func() time.Time { return now }))
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 30})

	if !strings.Contains(m.View(), "от 08:00  (1 ч 0 мин)") {
		t.Error("view should read elapsed time from the clock")
	}

	now = at(10, 5)
	// The tick payload is ignored in favour of the clock.
	updated, cmd := m.Update(tickMsg(at(23, 0)))
	m = updated.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !strings.Contains(m.View(), "от 08:00  (2 ч 5 мин)") {
		t.Error("view should show the elapsed time")
	}
}

func TestModel_SetClockNilFallsBackToWallClock(t *testing.T) {
	m := NewModel(domain.State{}, scenarioCatalog, config.ReelConfig{VisibleRows: 3, RowHeight: 1}, nil)
	m.SetClock(nil)
	if m.clock == nil {
		t.Fatal("clock should not be nil")
	}
	if m.now.IsZero() {
		t.Error("now should be read from the wall clock")
	}
}

func TestModel_SmallTerminalKeepsReelUsable(t *testing.T) {
	m := NewModel(domain.State{}, scenarioCatalog, config.ReelConfig{VisibleRows: 7, RowHeight: 1}, nil)
	m = send(m, tea.WindowSizeMsg{Width: 30, Height: 8})
	if m.reel.Height() < 1 {
		t.Fatalf("reel height = %d", m.reel.Height())
	}
	if m.log.Height < 1 {
		t.Errorf("log height = %d", m.log.Height)
	}
	if got := m.reel.Centered(); got == "" {
		t.Error("reel should still centre an entry")
	}
}

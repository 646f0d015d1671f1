package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jchau/itin/internal/cli/formatter"
	"github.com/jchau/itin/internal/domain"
)

type planKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Park     key.Binding
	Restore  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultPlanKeyMap() planKeyMap {
	return planKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/K", "move item up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓/J", "move item down"),
		),
		Park: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "park item"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore parked item here"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k planKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.MoveDown, k.Park, k.Restore, k.Help, k.Quit}
}

func (k planKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Park, k.Restore, k.Help, k.Quit},
	}
}

// planModel is the bubbletea model behind "itin plan". Every move,
// park, and restore goes straight through the itinerary service, so
// the times on screen are always the saved, rippled truth.
type planModel struct {
	app  *App
	trip *domain.Trip
	it   *domain.Itinerary

	// cursor indexes the combined list: committed items first, then
	// the parked section.
	cursor int

	keys   planKeyMap
	help   help.Model
	status string
	err    error
}

func newPlanModel(app *App, trip *domain.Trip, it *domain.Itinerary) planModel {
	h := help.New()
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	return planModel{
		app:  app,
		trip: trip,
		it:   it,
		keys: defaultPlanKeyMap(),
		help: h,
	}
}

func (m planModel) Init() tea.Cmd { return nil }

func (m planModel) rowCount() int {
	return len(m.it.Items) + len(m.it.Parked)
}

// rowItem returns the item under the cursor and whether it is parked.
func (m planModel) rowItem(i int) (*domain.ScheduleItem, bool) {
	if i < len(m.it.Items) {
		return m.it.Items[i], false
	}
	i -= len(m.it.Items)
	if i < len(m.it.Parked) {
		return m.it.Parked[i], true
	}
	return nil, false
}

func (m planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.MoveUp):
			return m.shift(-1), nil

		case key.Matches(msg, m.keys.MoveDown):
			return m.shift(+1), nil

		case key.Matches(msg, m.keys.Park):
			return m.park(), nil

		case key.Matches(msg, m.keys.Restore):
			return m.restore(), nil
		}
	}
	return m, nil
}

// shift moves the item under the cursor one position up or down in
// the committed sequence and lets the ripple resettle every time.
func (m planModel) shift(delta int) planModel {
	item, parked := m.rowItem(m.cursor)
	if item == nil || parked {
		return m
	}
	pos := m.it.IndexOf(item.ID) + delta
	if pos < 0 || pos >= len(m.it.Items) {
		return m
	}

	it, err := m.app.Itineraries.MoveItem(context.Background(), m.trip.ID, item.ID, pos)
	if err != nil {
		m.err = err
		return m
	}
	m.it = it
	m.cursor = pos
	m.status = fmt.Sprintf("moved %s", itemLabel(it.Find(item.ID)))
	m.err = nil
	return m
}

func (m planModel) park() planModel {
	item, parked := m.rowItem(m.cursor)
	if item == nil || parked {
		return m
	}

	it, err := m.app.Itineraries.ParkItem(context.Background(), m.trip.ID, item.ID)
	if err != nil {
		m.err = err
		return m
	}
	m.it = it
	if m.cursor >= m.rowCount() {
		m.cursor = m.rowCount() - 1
	}
	m.status = fmt.Sprintf("parked %s", itemLabel(it.Find(item.ID)))
	m.err = nil
	return m
}

// restore re-inserts the parked item under the cursor at the end of
// the committed sequence, where the ripple gives it fresh times.
func (m planModel) restore() planModel {
	item, parked := m.rowItem(m.cursor)
	if item == nil || !parked {
		return m
	}

	it, err := m.app.Itineraries.RestoreItem(context.Background(), m.trip.ID, item.ID, len(m.it.Items))
	if err != nil {
		m.err = err
		return m
	}
	m.it = it
	m.cursor = m.it.IndexOf(item.ID)
	m.status = fmt.Sprintf("restored %s at %s", itemLabel(it.Find(item.ID)), it.Find(item.ID).Start)
	m.err = nil
	return m
}

var (
	planCursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	planRowStyle    = lipgloss.NewStyle().Foreground(formatter.ColorFg)
)

func (m planModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(m.trip.Name) + "\n\n")

	for i, item := range m.it.Items {
		b.WriteString(m.renderRow(i, item, false))
	}
	if len(m.it.Parked) > 0 {
		b.WriteString("\n" + formatter.Dim("─── not yet scheduled ───") + "\n")
		for i, item := range m.it.Parked {
			b.WriteString(m.renderRow(len(m.it.Items)+i, item, true))
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("✗ "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(formatter.Dim(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m planModel) renderRow(i int, item *domain.ScheduleItem, parked bool) string {
	cursor := "  "
	style := planRowStyle
	if i == m.cursor {
		cursor = planCursorStyle.Render("▸ ")
		style = planCursorStyle
	}

	span := fmt.Sprintf("%s–%s", item.Start, item.End)
	if parked {
		span = "--:--"
	}
	line := fmt.Sprintf("%s%-13s %s %s", cursor, span, formatter.KindTag(item.Kind), style.Render(itemLabel(item)))
	return line + "\n"
}

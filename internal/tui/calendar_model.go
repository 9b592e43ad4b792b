package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexandrumolea/fingrow/internal/calendar"
	"github.com/alexandrumolea/fingrow/internal/day"
	"github.com/alexandrumolea/fingrow/internal/models"
	"github.com/alexandrumolea/fingrow/internal/timeutil"
)

// eventsLoadedMsg carries the external events fetched for one day
type eventsLoadedMsg struct {
	day    time.Time
	events []calendar.Event
}

// draftCreatedMsg reports the outcome of creating a draft event
type draftCreatedMsg struct {
	event *calendar.Event
	err   error
}

// CalendarModel is the TUI model for the month calendar browser
type CalendarModel struct {
	width  int
	height int

	// Selected day (always at midnight)
	cursor time.Time

	// All activities, loaded once at startup
	activities []models.Activity

	// External calendar (nil when not configured)
	svc calendar.Service

	// Events of the selected day
	events        []calendar.Event
	loadingEvents bool
	spinner       spinner.Model

	// One-line status message shown in the help bar area
	status string
}

// NewCalendarModel creates a calendar browser positioned on today
func NewCalendarModel(activities []models.Activity, svc calendar.Service) CalendarModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return CalendarModel{
		cursor:     timeutil.StartOfDay(time.Now()),
		activities: activities,
		svc:        svc,
		spinner:    s,
		// Init cannot mutate the model, so the first fetch starts loading here
		loadingEvents: svc != nil,
	}
}

// Init starts the first event fetch
func (m CalendarModel) Init() tea.Cmd {
	return m.reloadEvents()
}

// reloadEvents kicks off an async fetch for the cursor day
func (m *CalendarModel) reloadEvents() tea.Cmd {
	if m.svc == nil {
		m.events = nil
		m.loadingEvents = false
		return nil
	}

	m.loadingEvents = true
	svc := m.svc
	d := m.cursor
	fetch := func() tea.Msg {
		return eventsLoadedMsg{day: d, events: calendar.EventsForDay(context.Background(), svc, d)}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

// Update handles messages
func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loadingEvents {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case eventsLoadedMsg:
		// Ignore stale responses for a day we already navigated away from
		if !timeutil.SameDay(msg.day, m.cursor) {
			return m, nil
		}
		m.events = msg.events
		m.loadingEvents = false
		return m, nil

	case draftCreatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("❌ Eroare la crearea evenimentului: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("✅ Eveniment \"%s\" creat la %s", msg.event.Title, timeutil.FormatTime(msg.event.Start))
		return m, m.reloadEvents()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "left", "h":
			return m.moveCursor(m.cursor.AddDate(0, 0, -1))

		case "right", "l":
			return m.moveCursor(m.cursor.AddDate(0, 0, 1))

		case "up", "k":
			return m.moveCursor(m.cursor.AddDate(0, 0, -7))

		case "down", "j":
			return m.moveCursor(m.cursor.AddDate(0, 0, 7))

		case "[", "pgup":
			return m.moveCursor(timeutil.StartOfMonth(m.cursor).AddDate(0, -1, 0))

		case "]", "pgdown":
			return m.moveCursor(timeutil.StartOfMonth(m.cursor).AddDate(0, 1, 0))

		case "t":
			return m.moveCursor(timeutil.StartOfDay(time.Now()))

		case "e":
			return m.createDraftEvent()
		}
	}

	return m, nil
}

// moveCursor selects a new day and refetches its events
func (m CalendarModel) moveCursor(to time.Time) (tea.Model, tea.Cmd) {
	if timeutil.SameDay(to, m.cursor) {
		return m, nil
	}
	m.cursor = to
	m.status = ""
	return m, m.reloadEvents()
}

// createDraftEvent inserts a one-hour draft on the selected day
func (m CalendarModel) createDraftEvent() (tea.Model, tea.Cmd) {
	if m.svc == nil {
		m.status = "⚠️  Calendarul extern nu este configurat"
		return m, nil
	}

	svc := m.svc
	d := m.cursor
	return m, func() tea.Msg {
		ev, err := svc.CreateDraftEvent(context.Background(), "Sesiune coaching", d)
		return draftCreatedMsg{event: ev, err: err}
	}
}

// View renders the TUI
func (m CalendarModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Calculate layout
	leftWidth := 36 // month grid is fixed-width
	rightWidth := m.width - leftWidth - 1
	if rightWidth < 30 {
		rightWidth = 30
	}

	leftPanel := m.renderMonthGrid(leftWidth)
	rightPanel := m.renderDayDetails(rightWidth)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		" ",
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"", // Small top margin to show border
		content,
		"",
		m.renderHelpBar(),
	)
}

// renderMonthGrid renders the left panel with the month calendar
func (m CalendarModel) renderMonthGrid(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render("📅 " + timeutil.MonthYear(m.cursor)))
	b.WriteString("\n\n")

	weekdayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(weekdayStyle.Render(" Lu  Ma  Mi  Jo  Vi  Sâ  Du"))
	b.WriteString("\n")

	g := day.MonthGrid(m.cursor)
	today := time.Now()

	for row := 0; row < g.Rows; row++ {
		var nums, dots strings.Builder
		for col := 0; col < 7; col++ {
			n := g.DayAt(row*7 + col)
			if n == 0 {
				nums.WriteString("    ")
				dots.WriteString("    ")
				continue
			}
			d := g.Date(n)

			style := lipgloss.NewStyle()
			switch {
			case timeutil.SameDay(d, m.cursor):
				style = style.Bold(true).
					Foreground(lipgloss.Color(ColorPrimaryText)).
					Background(lipgloss.Color(ColorAccentMain))
			case timeutil.SameDay(d, today):
				style = style.Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
			default:
				style = style.Foreground(lipgloss.Color(ColorPrimaryText))
			}
			nums.WriteString(style.Render(fmt.Sprintf(" %2d ", n)))

			dots.WriteString(m.renderDayDots(d))
		}
		b.WriteString(nums.String())
		b.WriteString("\n")
		b.WriteString(dots.String())
		b.WriteString("\n")
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return borderStyle.Render(b.String())
}

// renderDayDots renders up to three colored type dots under a day cell
func (m CalendarModel) renderDayDots(d time.Time) string {
	types := day.TypesOn(m.activities, d)
	if len(types) > 3 {
		types = types[:3]
	}

	var b strings.Builder
	b.WriteString(" ")
	for _, t := range types {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(TypeColor(t))).Render("•")
		b.WriteString(dot)
	}
	// Pad the cell to four columns
	for i := len(types); i < 3; i++ {
		b.WriteString(" ")
	}
	return b.String()
}

// renderDayDetails renders the right panel: activities plus the day timeline
func (m CalendarModel) renderDayDetails(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText))
	b.WriteString(titleStyle.Render(timeutil.FormatDateMedium(m.cursor)))
	b.WriteString("\n\n")

	// Activities of the day
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(sectionStyle.Render("Activități"))
	b.WriteString("\n")

	selected := day.ActivitiesOn(m.activities, m.cursor)
	if len(selected) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("Nicio activitate"))
		b.WriteString("\n")
	}
	for _, a := range selected {
		typ := a.ActivityType()
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(TypeColor(typ))).Render("●")
		line := fmt.Sprintf("%s %s · %s · %s", dot, typ.String(), a.ClientName(), timeutil.FormatHours(a.Hours))
		b.WriteString(line)
		b.WriteString("\n")
	}

	// External timeline with free gaps
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Program"))
	b.WriteString("\n")

	switch {
	case m.loadingEvents:
		loadStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		b.WriteString(m.spinner.View())
		b.WriteString(loadStyle.Render(" se încarcă evenimentele..."))
		b.WriteString("\n")
	case m.svc == nil:
		mutedStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true)
		b.WriteString(mutedStyle.Render("Calendar extern neconfigurat"))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTimeline())
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return borderStyle.Render(b.String())
}

// renderTimeline renders the merged event/free-gap list of the selected day
func (m CalendarModel) renderTimeline() string {
	items := day.MergeTimeline(m.events)
	if len(items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		return emptyStyle.Render("Fără evenimente externe") + "\n"
	}

	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	gapStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Italic(true)

	var b strings.Builder
	for _, item := range items {
		span := fmt.Sprintf("%s – %s", timeutil.FormatTime(item.Start), timeutil.FormatTime(item.End))
		if item.Kind == day.ItemFreeGap {
			b.WriteString(timeStyle.Render(span))
			b.WriteString("  ")
			b.WriteString(gapStyle.Render(fmt.Sprintf("%s (%s)", item.Title, timeutil.FormatGapDuration(item.Duration()))))
		} else {
			b.WriteString(timeStyle.Render(span))
			b.WriteString("  ")
			b.WriteString(item.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelpBar renders the help bar, or the last status message if set
func (m CalendarModel) renderHelpBar() string {
	if m.status != "" {
		statusStyle := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width)
		return statusStyle.Render(m.status)
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "←/→ zi · ↑/↓ săptămână · [/] lună · t azi · e eveniment · q/esc ieșire"
	return helpStyle.Render(helpText)
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexandrumolea/fingrow/internal/calendar"
	"github.com/alexandrumolea/fingrow/internal/models"
)

// RunCalendarTUI starts the interactive month calendar browser
func RunCalendarTUI(activities []models.Activity, svc calendar.Service) error {
	model := NewCalendarModel(activities, svc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

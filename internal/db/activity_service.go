package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexandrumolea/fingrow/internal/models"
)

// CreateActivityRequest holds the data needed to record a new activity
type CreateActivityRequest struct {
	Type        models.ActivityType
	ClientID    *uint
	StartDate   *time.Time
	EndDate     *time.Time
	Hours       float64
	CostPerHour float64
	Notes       string
	Invoiced    bool
}

// CreateActivity records a new activity, normalizing dates and the total
func CreateActivity(req CreateActivityRequest) (*models.Activity, error) {
	if req.Hours < 0 {
		return nil, fmt.Errorf("hours must be non-negative, got %v", req.Hours)
	}
	if req.CostPerHour < 0 {
		return nil, fmt.Errorf("cost per hour must be non-negative, got %v", req.CostPerHour)
	}

	activity := models.Activity{
		UUID:        uuid.NewString(),
		Type:        req.Type.String(),
		ClientID:    req.ClientID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Hours:       req.Hours,
		CostPerHour: req.CostPerHour,
		Notes:       req.Notes,
		Invoiced:    req.Invoiced,
	}
	normalizeActivity(&activity)

	if err := DB.Create(&activity).Error; err != nil {
		return nil, err
	}

	DB.Preload("Client").First(&activity, activity.ID)
	return &activity, nil
}

// normalizeActivity enforces the write-time invariants: end date never
// precedes the start date, and the total always equals hours x rate.
func normalizeActivity(a *models.Activity) {
	if a.StartDate != nil && a.EndDate != nil && a.EndDate.Before(*a.StartDate) {
		clamped := *a.StartDate
		a.EndDate = &clamped
	}
	a.TotalAmount = a.Hours * a.CostPerHour
}

// SaveActivity persists in-place edits, re-applying normalization
func SaveActivity(activity *models.Activity) error {
	if activity.Hours < 0 || activity.CostPerHour < 0 {
		return fmt.Errorf("hours and cost per hour must be non-negative")
	}
	normalizeActivity(activity)
	return DB.Save(activity).Error
}

// GetActivities retrieves all activities ordered by start date.
// The list view wants newest first; the calendar wants oldest first.
func GetActivities(ascending bool) ([]models.Activity, error) {
	order := "start_date DESC"
	if ascending {
		order = "start_date ASC"
	}

	var activities []models.Activity
	if err := DB.Preload("Client").Order(order).Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivityByID retrieves a single activity with its client loaded
func GetActivityByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := DB.Preload("Client").First(&activity, id).Error; err != nil {
		return nil, fmt.Errorf("activity #%d not found", id)
	}
	return &activity, nil
}

// SetInvoiced flips the invoice flag on an activity
func SetInvoiced(id uint, invoiced bool) (*models.Activity, error) {
	activity, err := GetActivityByID(id)
	if err != nil {
		return nil, err
	}

	if activity.Invoiced == invoiced {
		state := "not invoiced"
		if invoiced {
			state = "already invoiced"
		}
		return nil, fmt.Errorf("activity #%d is %s", id, state)
	}

	activity.Invoiced = invoiced
	if err := DB.Save(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteActivity removes an activity
func DeleteActivity(id uint) error {
	activity, err := GetActivityByID(id)
	if err != nil {
		return err
	}
	return DB.Delete(activity).Error
}

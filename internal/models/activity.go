package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity represents a billable session (coaching, workshop, ...)
type Activity struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UUID string `gorm:"uniqueIndex;not null" json:"uuid"`

	// Raw enum string; always read back through ParseActivityType
	Type string `gorm:"not null" json:"type"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	Hours       float64 `json:"hours"`
	CostPerHour float64 `json:"cost_per_hour"`
	TotalAmount float64 `json:"total_amount"` // always Hours * CostPerHour at save time
	Invoiced    bool    `gorm:"default:false" json:"invoiced"`
	Notes       string  `json:"notes"`

	// Relationships (weak reference: activity does not own the client)
	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`
}

// ActivityType returns the parsed type, falling back to Others for
// unrecognized raw strings.
func (a *Activity) ActivityType() ActivityType {
	return ParseActivityType(a.Type)
}

// ClientName returns the display name of the linked client, or the
// placeholder used across exports when none is set.
func (a *Activity) ClientName() string {
	if a.Client == nil || a.Client.Name == "" {
		return "Fara client"
	}
	return a.Client.Name
}

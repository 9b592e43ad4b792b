package models

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a billing counterparty
type Client struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UUID  string `gorm:"uniqueIndex;not null" json:"uuid"`
	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Relationships (deleting a client does not delete its activities)
	Activities []Activity `gorm:"foreignKey:ClientID" json:"activities"`
}

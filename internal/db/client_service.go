package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alexandrumolea/fingrow/internal/models"
)

// CreateClient creates a new client; the name is required after trimming
func CreateClient(name, email, phone string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("client name cannot be empty")
	}

	client := models.Client{
		UUID:  uuid.NewString(),
		Name:  name,
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}

	if err := DB.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// SaveClient persists edits to an existing client
func SaveClient(client *models.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return fmt.Errorf("client name cannot be empty")
	}
	return DB.Save(client).Error
}

// GetClients retrieves all clients ordered by name
func GetClients() ([]models.Client, error) {
	var clients []models.Client
	if err := DB.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClientByID retrieves a client with its activity history, newest first
func GetClientByID(id uint) (*models.Client, error) {
	var client models.Client
	err := DB.Preload("Activities", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date DESC")
	}).First(&client, id).Error
	if err != nil {
		return nil, fmt.Errorf("client #%d not found", id)
	}
	return &client, nil
}

// FindClientByName looks a client up by exact name
func FindClientByName(name string) (*models.Client, error) {
	var client models.Client
	err := DB.Where("name = ?", strings.TrimSpace(name)).First(&client).Error
	if err != nil {
		return nil, fmt.Errorf("client %q not found", name)
	}
	return &client, nil
}

// DeleteClient removes a client. Its activities survive with the client
// reference cleared.
func DeleteClient(id uint) error {
	client, err := GetClientByID(id)
	if err != nil {
		return err
	}

	if err := DB.Model(&models.Activity{}).
		Where("client_id = ?", client.ID).
		Update("client_id", nil).Error; err != nil {
		return err
	}

	return DB.Delete(client).Error
}

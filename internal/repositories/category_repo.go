package repositories

import (
	"gadgetstore/internal/models"
)

// CategoryUpdate is a partial update: nil fields are left unchanged.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetAllWithProductCounts() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(id string, update CategoryUpdate) (*models.Category, error)
	Delete(id string) error
}

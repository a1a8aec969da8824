package repositories

import "gadgetstore/internal/models"

// UserUpdate is a partial update: nil fields are left unchanged.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	WithReviewCounts() ([]models.User, error)
	Create(user *models.User) error
	Update(id string, update UserUpdate) (*models.User, error)
	Delete(id string) error
}

package repositories

import (
	"gadgetstore/internal/models"
)

// ReviewUpdate is a partial update: nil fields are left unchanged.
type ReviewUpdate struct {
	Rating  *int
	Comment *string
}

// ReviewRepository defines the interface for review data access, including
// the aggregate queries derived from reviews.
type ReviewRepository interface {
	GetAll() ([]models.Review, error)
	GetByID(id string) (*models.Review, error)
	ByProduct(productID string) ([]models.Review, error)
	ByUser(userID string) ([]models.Review, error)
	Recent(limit int) ([]models.Review, error)
	Create(review *models.Review) error
	Update(id string, update ReviewUpdate) (*models.Review, error)
	Delete(id string) error
	AverageRating(productID string) (*models.RatingSummary, error)
	TopRatedProducts(limit int) ([]models.Product, error)
}

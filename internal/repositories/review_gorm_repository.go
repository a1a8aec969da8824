package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

func (r *GORMReviewRepository) withRelations() *gorm.DB {
	return r.db.Preload("User").Preload("Product")
}

// GetAll retrieves all reviews with user and product info, newest first.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.withRelations().Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

// GetByID retrieves a single review with its relations.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.withRelations().First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Review not found")
		}
		return nil, fmt.Errorf("failed to get review %s: %w", id, err)
	}
	return &review, nil
}

// ByProduct retrieves all reviews for a product, newest first.
func (r *GORMReviewRepository) ByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.withRelations().
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// ByUser retrieves all reviews left by a user, newest first.
func (r *GORMReviewRepository) ByUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.withRelations().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for user %s: %w", userID, err)
	}
	return reviews, nil
}

// Recent retrieves the most recent reviews up to the limit.
func (r *GORMReviewRepository) Recent(limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.withRelations().
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent reviews: %w", err)
	}
	return reviews, nil
}

// Create persists a new review, generating an ID when absent.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return r.withRelations().First(review, "id = ?", review.ID).Error
}

// Update applies only the fields present in the update.
func (r *GORMReviewRepository) Update(id string, update ReviewUpdate) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Review not found")
		}
		return nil, fmt.Errorf("failed to get review %s: %w", id, err)
	}

	changes := map[string]interface{}{}
	if update.Rating != nil {
		changes["rating"] = *update.Rating
	}
	if update.Comment != nil {
		changes["comment"] = *update.Comment
	}
	if len(changes) > 0 {
		if err := r.db.Model(&review).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update review %s: %w", id, err)
		}
	}

	if err := r.withRelations().First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review %s: %w", id, err)
	}
	return &review, nil
}

// Delete removes a review.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Review not found")
	}
	return nil
}

// AverageRating computes the review aggregate for a product. A product with
// no reviews yields an average of 0.
func (r *GORMReviewRepository) AverageRating(productID string) (*models.RatingSummary, error) {
	var summary models.RatingSummary
	err := r.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings for product %s: %w", productID, err)
	}
	return &summary, nil
}

// TopRatedProducts ranks active reviewed products by average rating,
// breaking ties by review count.
func (r *GORMReviewRepository) TopRatedProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Model(&models.Product{}).
		Select("products.*").
		Joins("JOIN reviews ON reviews.product_id = products.id").
		Where("products.is_active = ?", true).
		Group("products.id").
		Order("AVG(reviews.rating) DESC, COUNT(reviews.id) DESC").
		Limit(limit).
		Preload("Category").
		Preload("Reviews").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank products by rating: %w", err)
	}
	annotateReviewAggregates(products)
	return products, nil
}

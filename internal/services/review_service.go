package services

import (
	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
	"gadgetstore/internal/repositories"
)

const defaultRecentLimit = 10

// ReviewInput carries the fields accepted when creating a review.
type ReviewInput struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=1000"`
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// ReviewUpdateInput carries a partial update; nil fields are not touched.
type ReviewUpdateInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// ReviewService handles business logic related to reviews, including the
// review-derived aggregates.
type ReviewService struct {
	repo        repositories.ReviewRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *ReviewService {
	return &ReviewService{
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// List retrieves all reviews, newest first.
func (s *ReviewService) List() ([]models.Review, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a single review.
func (s *ReviewService) GetByID(id string) (*models.Review, error) {
	return s.repo.GetByID(id)
}

// ByProduct retrieves all reviews for a product, newest first.
func (s *ReviewService) ByProduct(productID string) ([]models.Review, error) {
	return s.repo.ByProduct(productID)
}

// ByUser retrieves all reviews left by a user, newest first.
func (s *ReviewService) ByUser(userID string) ([]models.Review, error) {
	return s.repo.ByUser(userID)
}

// Recent retrieves the most recent reviews. Non-positive limits fall back
// to the default of 10.
func (s *ReviewService) Recent(limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.Recent(limit)
}

// Create validates the input, checks both referenced entities exist, and
// persists the review.
func (s *ReviewService) Create(input ReviewInput) (*models.Review, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(input.UserID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("User does not exist")
		}
		return nil, err
	}
	if _, err := s.productRepo.GetByID(input.ProductID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Product does not exist")
		}
		return nil, err
	}

	review := &models.Review{
		Rating:    input.Rating,
		Comment:   input.Comment,
		UserID:    input.UserID,
		ProductID: input.ProductID,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update applies a partial update to an existing review.
func (s *ReviewService) Update(id string, input ReviewUpdateInput) (*models.Review, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	return s.repo.Update(id, repositories.ReviewUpdate{
		Rating:  input.Rating,
		Comment: input.Comment,
	})
}

// Delete removes a review.
func (s *ReviewService) Delete(id string) error {
	return s.repo.Delete(id)
}

// AverageRating returns the review aggregate for a product; a product with
// no reviews yields {0, 0}.
func (s *ReviewService) AverageRating(productID string) (*models.RatingSummary, error) {
	return s.repo.AverageRating(productID)
}

// TopRatedProducts ranks active reviewed products by average rating, ties
// broken by review count. Non-positive limits fall back to the default.
func (s *ReviewService) TopRatedProducts(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.TopRatedProducts(limit)
}

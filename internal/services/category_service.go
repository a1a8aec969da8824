package services

import (
	"gadgetstore/internal/models"
	"gadgetstore/internal/repositories"
)

// CategoryInput carries the fields accepted when creating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// CategoryUpdateInput carries a partial update; nil fields are not touched.
type CategoryUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List retrieves all categories ordered by name.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.GetAll()
}

// ListWithProductCounts retrieves categories annotated with their active
// product counts.
func (s *CategoryService) ListWithProductCounts() ([]models.Category, error) {
	return s.repo.GetAllWithProductCounts()
}

// GetByID retrieves a category with its active products.
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// Create validates the input and persists a new category.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies a partial update to an existing category.
func (s *CategoryService) Update(id string, input CategoryUpdateInput) (*models.Category, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	return s.repo.Update(id, repositories.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
	})
}

// Delete removes a category. It fails with a conflict while any product
// still references it.
func (s *CategoryService) Delete(id string) error {
	return s.repo.Delete(id)
}

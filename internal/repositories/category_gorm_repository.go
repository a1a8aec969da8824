package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories ordered by name.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetAllWithProductCounts retrieves all categories annotated with the number
// of active products each one owns.
func (r *GORMCategoryRepository) GetAllWithProductCounts() ([]models.Category, error) {
	categories, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	type categoryCount struct {
		CategoryID string
		Count      int
	}
	var counts []categoryCount
	err = r.db.Model(&models.Product{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count products per category: %w", err)
	}

	byID := make(map[string]int, len(counts))
	for _, c := range counts {
		byID[c.CategoryID] = c.Count
	}
	for i := range categories {
		categories[i].ProductCount = byID[categories[i].ID]
	}
	return categories, nil
}

// GetByID retrieves a category with its active products, newest first.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at DESC")
		}).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Category not found")
		}
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	category.ProductCount = len(category.Products)
	return &category, nil
}

// Create persists a new category. Names are unique.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	var existing int64
	if err := r.db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if existing > 0 {
		return apperrors.NewConflict("Category name already exists")
	}

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update applies only the fields present in the update.
func (r *GORMCategoryRepository) Update(id string, update CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Category not found")
		}
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if len(changes) > 0 {
		if err := r.db.Model(&category).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update category %s: %w", id, err)
		}
	}
	return &category, nil
}

// Delete removes a category. It fails with a conflict while any product,
// active or not, still references it.
func (r *GORMCategoryRepository) Delete(id string) error {
	var productCount int64
	err := r.db.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error
	if err != nil {
		return fmt.Errorf("failed to count products for category %s: %w", id, err)
	}
	if productCount > 0 {
		return apperrors.NewConflict("Cannot delete category with existing products")
	}

	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Category not found")
	}
	return nil
}

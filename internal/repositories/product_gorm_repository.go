package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// active returns a query scoped to sellable products.
func (r *GORMProductRepository) active() *gorm.DB {
	return r.db.Model(&models.Product{}).Where("is_active = ?", true)
}

// applyFilter adds category and case-insensitive search conditions.
func applyFilter(query *gorm.DB, filter ProductFilter) *gorm.DB {
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	return query
}

// List retrieves one page of active products, newest first, with category and
// reviews attached. It also returns the total count of matching rows.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.Product, int64, error) {
	var total int64
	if err := applyFilter(r.active(), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := applyFilter(r.active(), filter).
		Preload("Category").
		Preload("Reviews").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	annotateReviewAggregates(products)
	return products, total, nil
}

// GetByID retrieves a single product with its category and reviews
// (newest first, each with the reviewing user).
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	product.ReviewCount = len(product.Reviews)
	product.AverageRating = averageRating(product.Reviews)
	return &product, nil
}

// Create persists a new product, generating an ID when absent.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return r.db.Preload("Category").First(product, "id = ?", product.ID).Error
}

// Update applies only the fields present in the update and returns the
// refreshed product.
func (r *GORMProductRepository) Update(id string, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Price != nil {
		changes["price"] = *update.Price
	}
	if update.Stock != nil {
		changes["stock"] = *update.Stock
	}
	if update.ImageURL != nil {
		changes["image_url"] = *update.ImageURL
	}
	if update.Condition != nil {
		changes["condition"] = *update.Condition
	}
	if update.CategoryID != nil {
		changes["category_id"] = *update.CategoryID
	}
	if update.IsActive != nil {
		changes["is_active"] = *update.IsActive
	}

	if len(changes) > 0 {
		if err := r.db.Model(&product).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update product %s: %w", id, err)
		}
	}

	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product %s: %w", id, err)
	}
	return &product, nil
}

// Deactivate soft-deletes a product by clearing its active flag.
func (r *GORMProductRepository) Deactivate(id string) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Product not found")
	}
	return nil
}

// Search returns active products whose name or description contains the term,
// case-insensitively, newest first.
func (r *GORMProductRepository) Search(term string) ([]models.Product, error) {
	return r.findActive(applyFilter(r.active(), ProductFilter{Search: term}), "created_at DESC")
}

// ByCategory returns active products in a category, newest first.
func (r *GORMProductRepository) ByCategory(categoryID string) ([]models.Product, error) {
	return r.findActive(r.active().Where("category_id = ?", categoryID), "created_at DESC")
}

// LowStock returns active products at or below the stock threshold, lowest
// stock first.
func (r *GORMProductRepository) LowStock(threshold int) ([]models.Product, error) {
	return r.findActive(r.active().Where("stock <= ?", threshold), "stock ASC")
}

func (r *GORMProductRepository) findActive(query *gorm.DB, order string) ([]models.Product, error) {
	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Reviews").
		Order(order).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	annotateReviewAggregates(products)
	return products, nil
}

// UpdateStock sets the stock level of a product.
func (r *GORMProductRepository) UpdateStock(id string, stock int) (*models.Product, error) {
	value := stock
	return r.Update(id, ProductUpdate{Stock: &value})
}

// annotateReviewAggregates fills the derived ReviewCount and AverageRating
// fields from the preloaded reviews.
func annotateReviewAggregates(products []models.Product) {
	for i := range products {
		products[i].ReviewCount = len(products[i].Reviews)
		products[i].AverageRating = averageRating(products[i].Reviews)
	}
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}

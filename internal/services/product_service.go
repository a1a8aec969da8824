package services

import (
	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
	"gadgetstore/internal/repositories"
)

const defaultLowStockThreshold = 10

// ProductInput carries the fields accepted when creating a product.
// Condition is accepted but optional; it only appears on some storefronts.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,max=500"`
	Condition   string  `json:"condition" validate:"omitempty,max=50"`
	CategoryID  string  `json:"categoryId" validate:"required"`
}

// ProductUpdateInput carries a partial update; nil fields are not touched.
type ProductUpdateInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
	Condition   *string  `json:"condition" validate:"omitempty,max=50"`
	CategoryID  *string  `json:"categoryId"`
	IsActive    *bool    `json:"isActive"`
}

// ProductListOptions narrows a product listing request.
type ProductListOptions struct {
	Page       int
	Limit      int
	CategoryID string
	Search     string
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// List retrieves one page of active products. Out-of-range pages yield an
// empty page, never an error.
func (s *ProductService) List(opts ProductListOptions) ([]models.Product, Pagination, error) {
	page, limit := normalisePage(opts.Page, opts.Limit)

	products, total, err := s.repo.List(repositories.ProductFilter{
		Page:       page,
		Limit:      limit,
		CategoryID: opts.CategoryID,
		Search:     opts.Search,
	})
	if err != nil {
		return nil, Pagination{}, err
	}
	return products, NewPagination(page, limit, total), nil
}

// GetByID retrieves a single product with category and ordered reviews.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create validates the input and persists a new, active product. Stock
// defaults to 0 when omitted.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Category does not exist")
		}
		return nil, err
	}

	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       stock,
		ImageURL:    input.ImageURL,
		Condition:   input.Condition,
		IsActive:    true,
		CategoryID:  input.CategoryID,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial update to an existing product.
func (s *ProductService) Update(id string, input ProductUpdateInput) (*models.Product, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.NewValidation("Category does not exist")
			}
			return nil, err
		}
	}

	return s.repo.Update(id, repositories.ProductUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		Condition:   input.Condition,
		CategoryID:  input.CategoryID,
		IsActive:    input.IsActive,
	})
}

// Delete soft-deletes a product by marking it inactive.
func (s *ProductService) Delete(id string) error {
	return s.repo.Deactivate(id)
}

// Search finds active products matching the term in name or description.
func (s *ProductService) Search(term string) ([]models.Product, error) {
	if term == "" {
		return nil, apperrors.NewValidation("Search term is required")
	}
	return s.repo.Search(term)
}

// ByCategory lists active products in a category, newest first.
func (s *ProductService) ByCategory(categoryID string) ([]models.Product, error) {
	return s.repo.ByCategory(categoryID)
}

// LowStock lists active products at or below the threshold, lowest first.
// Non-positive thresholds fall back to the default of 10.
func (s *ProductService) LowStock(threshold int) ([]models.Product, error) {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return s.repo.LowStock(threshold)
}

// UpdateStock sets the stock level of a product.
func (s *ProductService) UpdateStock(id string, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, apperrors.NewValidation("Stock must be at least 0")
	}
	return s.repo.UpdateStock(id, stock)
}

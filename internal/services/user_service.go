package services

import (
	"gadgetstore/internal/models"
	"gadgetstore/internal/repositories"
)

// UserInput carries the fields accepted when creating a user.
type UserInput struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// UserUpdateInput carries a partial update; nil fields are not touched.
type UserUpdateInput struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List retrieves all users ordered by name.
func (s *UserService) List() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a user with their reviews.
func (s *UserService) GetByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// ByEmail retrieves a user by their unique email.
func (s *UserService) ByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

// WithReviewCounts retrieves all users annotated with their review counts.
func (s *UserService) WithReviewCounts() ([]models.User, error) {
	return s.repo.WithReviewCounts()
}

// Create validates the input and persists a new user.
func (s *UserService) Create(input UserInput) (*models.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:  input.Name,
		Email: input.Email,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to an existing user.
func (s *UserService) Update(id string, input UserUpdateInput) (*models.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	return s.repo.Update(id, repositories.UserUpdate{
		Name:  input.Name,
		Email: input.Email,
	})
}

// Delete removes a user.
func (s *UserService) Delete(id string) error {
	return s.repo.Delete(id)
}

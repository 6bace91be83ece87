package services

import (
	"errors"
	"fmt"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/pagination"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// UserService serves the admin user surface: the paginated active-user
// listing and account deactivation.
type UserService struct {
	users repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{users: userRepo}
}

// List returns one page of active (non-deleted) users.
func (s *UserService) List(page, pageSize int) ([]models.User, pagination.PageInfo, error) {
	p, err := pagination.New(page, pageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	users, total, err := s.users.ListUsers(p.Offset(), p.PageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return users, p.PageOf(total), nil
}

// Deactivate soft-deletes a user account.
func (s *UserService) Deactivate(id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	user.IsDelete = true
	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

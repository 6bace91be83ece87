package repositories

import (
	"fmt"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"gorm.io/gorm"
)

// AttendLikeRepository defines the interface for attend like data operations
type AttendLikeRepository interface {
	CreateLike(like *models.AttendLike) error
	DeleteLike(attendID, userID uint) error
	HasUserLiked(attendID, userID uint) (bool, error)
	GetLikesCountByAttendID(attendID uint) (int64, error)
}

// PostgresAttendLikeRepository implements AttendLikeRepository for PostgreSQL
type PostgresAttendLikeRepository struct {
	db *gorm.DB
}

// NewPostgresAttendLikeRepository creates a new PostgresAttendLikeRepository
func NewPostgresAttendLikeRepository(db *gorm.DB) *PostgresAttendLikeRepository {
	return &PostgresAttendLikeRepository{db: db}
}

// CreateLike creates a new like in PostgreSQL
func (r *PostgresAttendLikeRepository) CreateLike(like *models.AttendLike) error {
	return r.db.Create(like).Error
}

// DeleteLike deletes a like from PostgreSQL
func (r *PostgresAttendLikeRepository) DeleteLike(attendID, userID uint) error {
	res := r.db.Where("attend_id = ? AND user_id = ?", attendID, userID).Delete(&models.AttendLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("like not found")
	}
	return nil
}

// HasUserLiked checks if a user has liked a specific attend
func (r *PostgresAttendLikeRepository) HasUserLiked(attendID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.AttendLike{}).Where("attend_id = ? AND user_id = ?", attendID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByAttendID retrieves the count of likes for a specific attend
func (r *PostgresAttendLikeRepository) GetLikesCountByAttendID(attendID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.AttendLike{}).Where("attend_id = ?", attendID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

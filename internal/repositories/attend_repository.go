package repositories

import (
	"github.com/daheemang/challenge-platform/backend/internal/models"
	"gorm.io/gorm"
)

// AttendRepository defines the interface for attend (work submission) operations
type AttendRepository interface {
	CreateAttend(attend *models.Attend) error
	GetAttendByID(id uint) (*models.Attend, error)
	UpdateAttend(attend *models.Attend) error
	ListByChallengeID(challengeID uint, offset, limit int) ([]models.Attend, int64, error)
	CountSubmitted(challengeID uint) (int64, error)
}

// PostgresAttendRepository implements AttendRepository for PostgreSQL
type PostgresAttendRepository struct {
	db *gorm.DB
}

// NewPostgresAttendRepository creates a new PostgresAttendRepository
func NewPostgresAttendRepository(db *gorm.DB) *PostgresAttendRepository {
	return &PostgresAttendRepository{db: db}
}

// CreateAttend creates a new attend in PostgreSQL
func (r *PostgresAttendRepository) CreateAttend(attend *models.Attend) error {
	return r.db.Create(attend).Error
}

// GetAttendByID retrieves an attend by ID from PostgreSQL
func (r *PostgresAttendRepository) GetAttendByID(id uint) (*models.Attend, error) {
	var attend models.Attend
	if err := r.db.First(&attend, id).Error; err != nil {
		return nil, err
	}
	return &attend, nil
}

// UpdateAttend updates an existing attend in PostgreSQL
func (r *PostgresAttendRepository) UpdateAttend(attend *models.Attend) error {
	return r.db.Save(attend).Error
}

// ListByChallengeID returns one page of visible (submitted, non-deleted)
// attends for a challenge plus the total visible count.
func (r *PostgresAttendRepository) ListByChallengeID(challengeID uint, offset, limit int) ([]models.Attend, int64, error) {
	q := r.db.Model(&models.Attend{}).
		Where("challenge_id = ? AND is_save = false AND is_delete = false", challengeID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attends []models.Attend
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&attends).Error
	return attends, total, err
}

// CountSubmitted counts the attends that count toward participation.
func (r *PostgresAttendRepository) CountSubmitted(challengeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attend{}).
		Where("challenge_id = ? AND is_save = false AND is_delete = false", challengeID).
		Count(&count).Error
	return count, err
}

package repositories

import (
	"github.com/daheemang/challenge-platform/backend/internal/models"
	"gorm.io/gorm"
)

// ChallengeFilter holds the composable predicates for challenge listings.
// Zero values mean "no filter". Soft-deleted rows are always excluded.
type ChallengeFilter struct {
	Keyword string // case-insensitive title contains
	Field   models.ChallengeField
	Type    models.ChallengeType
	Status  models.ChallengeStatus
}

// ChallengeRepository defines the interface for challenge data operations
type ChallengeRepository interface {
	CreateChallenge(challenge *models.Challenge) error
	GetChallengeByID(id uint) (*models.Challenge, error)
	UpdateChallenge(challenge *models.Challenge) error
	DeleteChallenge(id uint) error // hard delete
	ListChallenges(filter ChallengeFilter, offset, limit int, order string) ([]models.Challenge, int64, error)
}

// PostgresChallengeRepository implements ChallengeRepository for PostgreSQL
type PostgresChallengeRepository struct {
	db *gorm.DB
}

// NewPostgresChallengeRepository creates a new PostgresChallengeRepository
func NewPostgresChallengeRepository(db *gorm.DB) *PostgresChallengeRepository {
	return &PostgresChallengeRepository{db: db}
}

// CreateChallenge creates a new challenge in PostgreSQL
func (r *PostgresChallengeRepository) CreateChallenge(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

// GetChallengeByID retrieves a challenge by ID from PostgreSQL
func (r *PostgresChallengeRepository) GetChallengeByID(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

// UpdateChallenge updates an existing challenge in PostgreSQL
func (r *PostgresChallengeRepository) UpdateChallenge(challenge *models.Challenge) error {
	return r.db.Save(challenge).Error
}

// DeleteChallenge physically removes a challenge row from PostgreSQL
func (r *PostgresChallengeRepository) DeleteChallenge(id uint) error {
	return r.db.Delete(&models.Challenge{}, id).Error
}

// ListChallenges returns one page of challenges matching the filter plus the
// total matching row count.
func (r *PostgresChallengeRepository) ListChallenges(filter ChallengeFilter, offset, limit int, order string) ([]models.Challenge, int64, error) {
	q := r.db.Model(&models.Challenge{}).Where("is_delete = ?", false)
	if filter.Keyword != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Keyword+"%")
	}
	if filter.Field != "" {
		q = q.Where("field = ?", filter.Field)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var challenges []models.Challenge
	if order == "" {
		order = "created_at DESC"
	}
	err := q.Order(order).Offset(offset).Limit(limit).Find(&challenges).Error
	return challenges, total, err
}

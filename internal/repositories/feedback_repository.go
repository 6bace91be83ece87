package repositories

import (
	"github.com/daheemang/challenge-platform/backend/internal/models"
	"gorm.io/gorm"
)

// FeedbackRepository defines the interface for feedback data operations
type FeedbackRepository interface {
	CreateFeedback(feedback *models.Feedback) error
	GetFeedbackByID(id uint) (*models.Feedback, error)
	GetFeedbacksByAttendID(attendID uint) ([]models.Feedback, error)
	UpdateFeedback(feedback *models.Feedback) error
	DeleteFeedback(id uint) error
}

// PostgresFeedbackRepository implements FeedbackRepository for PostgreSQL
type PostgresFeedbackRepository struct {
	db *gorm.DB
}

// NewPostgresFeedbackRepository creates a new PostgresFeedbackRepository
func NewPostgresFeedbackRepository(db *gorm.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

// CreateFeedback creates a new feedback in PostgreSQL
func (r *PostgresFeedbackRepository) CreateFeedback(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetFeedbackByID retrieves a feedback by ID from PostgreSQL
func (r *PostgresFeedbackRepository) GetFeedbackByID(id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// GetFeedbacksByAttendID retrieves all feedback for a specific attend
func (r *PostgresFeedbackRepository) GetFeedbacksByAttendID(attendID uint) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := r.db.Where("attend_id = ?", attendID).Order("created_at ASC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// UpdateFeedback updates an existing feedback in PostgreSQL
func (r *PostgresFeedbackRepository) UpdateFeedback(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

// DeleteFeedback deletes a feedback by ID from PostgreSQL
func (r *PostgresFeedbackRepository) DeleteFeedback(id uint) error {
	return r.db.Delete(&models.Feedback{}, id).Error
}

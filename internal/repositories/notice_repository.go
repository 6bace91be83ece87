package repositories

import (
	"github.com/daheemang/challenge-platform/backend/internal/models"
	"gorm.io/gorm"
)

// NoticeRepository defines the interface for notice operations
type NoticeRepository interface {
	CreateNotice(notice *models.Notice) error
	GetNoticeByID(id uint) (*models.Notice, error)
	MarkAsRead(noticeID uint) error
	GetByRecipientID(recipientID uint, offset, limit int) ([]models.Notice, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
}

type postgresNoticeRepository struct {
	db *gorm.DB
}

func NewPostgresNoticeRepository(db *gorm.DB) NoticeRepository {
	return &postgresNoticeRepository{db: db}
}

func (r *postgresNoticeRepository) CreateNotice(notice *models.Notice) error {
	return r.db.Create(notice).Error
}

func (r *postgresNoticeRepository) GetNoticeByID(id uint) (*models.Notice, error) {
	var notice models.Notice
	if err := r.db.First(&notice, id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *postgresNoticeRepository) MarkAsRead(noticeID uint) error {
	return r.db.Model(&models.Notice{}).Where("id = ?", noticeID).Update("is_read", true).Error
}

// GetByRecipientID returns one page of a user's notices, most recent first,
// plus the user's total notice count.
func (r *postgresNoticeRepository) GetByRecipientID(recipientID uint, offset, limit int) ([]models.Notice, int64, error) {
	var notices []models.Notice
	var total int64

	if err := r.db.Model(&models.Notice{}).Where("user_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notices).Error

	return notices, total, err
}

func (r *postgresNoticeRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notice{}).Where("user_id = ? AND is_read = false", recipientID).Count(&count).Error
	return count, err
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/pagination"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// NoticeService builds and persists typed notices for domain actions and
// serves the per-user notice inbox.
//
// Emission is fire-and-forget from the caller's point of view: a lifecycle or
// moderation mutation that already committed never rolls back because its
// notice failed to persist. The persistence error is still returned so the
// caller can report it.
type NoticeService struct {
	notices repositories.NoticeRepository
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo repositories.NoticeRepository) *NoticeService {
	return &NoticeService{notices: noticeRepo}
}

// fallbackNoticeSubject stands in for the context title when the source
// challenge no longer resolves, so the content never renders an empty subject.
const fallbackNoticeSubject = "참여한 챌린지"

// categoryLabel is the human-facing subject word per category.
func categoryLabel(c models.NoticeCategory) string {
	switch c {
	case models.CategoryChallenge:
		return "챌린지"
	case models.CategoryAttend:
		return "작업물"
	case models.CategoryFeedback:
		return "피드백"
	case models.CategoryApproval:
		return "챌린지 심사"
	case models.CategoryDeadline:
		return "마감"
	}
	return "알림"
}

// buildContent interpolates verb, subject title and an optional reason into
// the notice text. Wording is presentation; what must always be present is
// the verb, the title, the reason when given, and a timestamp.
func buildContent(category models.NoticeCategory, verb models.NoticeVerb, contextTitle, reason string) string {
	ts := time.Now().Format("2006-01-02 15:04")
	if reason != "" {
		return fmt.Sprintf("[%s] '%s' 항목이 %s 처리되었습니다. 사유: %s (%s)", categoryLabel(category), contextTitle, verb, reason, ts)
	}
	return fmt.Sprintf("[%s] '%s' 항목이 %s 처리되었습니다. (%s)", categoryLabel(category), contextTitle, verb, ts)
}

// Emit constructs a notice for the given action and persists it, unread.
// An unrecognized category string falls back to UNKNOWN rather than failing;
// only the store write itself can make Emit return an error.
func (s *NoticeService) Emit(category string, verb models.NoticeVerb, recipientID uint, contextTitle, reason string, attendID *uint) error {
	cat := models.ParseNoticeCategory(category)
	notice := &models.Notice{
		UserID:   recipientID,
		Category: cat,
		Content:  buildContent(cat, verb, contextTitle, reason),
		IsRead:   false,
		AttendID: attendID,
	}
	return s.notices.CreateNotice(notice)
}

// MarkRead flips a notice to read. Re-marking an already-read notice is a
// client error, not a no-op.
func (s *NoticeService) MarkRead(noticeID uint) (*models.Notice, error) {
	notice, err := s.notices.GetNoticeByID(noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notice %d not found: %w", noticeID, ErrNotFound)
		}
		return nil, err
	}
	if notice.IsRead {
		return nil, fmt.Errorf("notice %d: %w", noticeID, ErrAlreadyRead)
	}
	if err := s.notices.MarkAsRead(noticeID); err != nil {
		return nil, err
	}
	notice.IsRead = true
	return notice, nil
}

// ListForUser returns one page of a user's notices, most recent first.
func (s *NoticeService) ListForUser(userID uint, page, pageSize int) ([]models.Notice, pagination.PageInfo, error) {
	p, err := pagination.New(page, pageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	notices, total, err := s.notices.GetByRecipientID(userID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return notices, p.PageOf(total), nil
}

// UnreadCount returns the number of unread notices for a user.
func (s *NoticeService) UnreadCount(userID uint) (int64, error) {
	return s.notices.GetUnreadCount(userID)
}

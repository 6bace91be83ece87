package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/pagination"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// AttendService handles work submission (attends) and likes on attends.
type AttendService struct {
	attends    repositories.AttendRepository
	challenges repositories.ChallengeRepository
	likes      repositories.AttendLikeRepository
	notices    *NoticeService
}

// NewAttendService creates a new AttendService
func NewAttendService(attendRepo repositories.AttendRepository, challengeRepo repositories.ChallengeRepository, likeRepo repositories.AttendLikeRepository, noticeService *NoticeService) *AttendService {
	return &AttendService{
		attends:    attendRepo,
		challenges: challengeRepo,
		likes:      likeRepo,
		notices:    noticeService,
	}
}

func (s *AttendService) getAttend(id uint) (*models.Attend, error) {
	attend, err := s.attends.GetAttendByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attend %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return attend, nil
}

// Get returns a single attend by id.
func (s *AttendService) Get(id uint) (*models.Attend, error) {
	return s.getAttend(id)
}

// Submit records a user's work for a challenge. With isSave set the work is
// kept as an invisible draft and no notice goes out; an actual submission
// notifies the challenge owner.
func (s *AttendService) Submit(challengeID, userID uint, content string, isSave bool) (*models.Attend, error) {
	challenge, err := s.challenges.GetChallengeByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("challenge %d not found: %w", challengeID, ErrNotFound)
		}
		return nil, err
	}

	attend := &models.Attend{
		ChallengeID: challengeID,
		UserID:      userID,
		Content:     content,
		IsSave:      isSave,
	}
	if err := s.attends.CreateAttend(attend); err != nil {
		return nil, err
	}

	if !isSave {
		if err := s.notices.Emit(string(models.CategoryAttend), models.VerbSubmit, challenge.UserID, challenge.Title, "", &attend.ID); err != nil {
			log.Printf("attend notice emission failed (attend=%d): %v", attend.ID, err)
		}
	}
	return attend, nil
}

// Remove soft-deletes an attend.
func (s *AttendService) Remove(id uint) (*models.Attend, error) {
	attend, err := s.getAttend(id)
	if err != nil {
		return nil, err
	}
	attend.IsDelete = true
	if err := s.attends.UpdateAttend(attend); err != nil {
		return nil, err
	}
	return attend, nil
}

// List returns one page of visible attends for a challenge.
func (s *AttendService) List(challengeID uint, page, pageSize int) ([]models.Attend, pagination.PageInfo, error) {
	p, err := pagination.New(page, pageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	attends, total, err := s.attends.ListByChallengeID(challengeID, p.Offset(), p.PageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return attends, p.PageOf(total), nil
}

// Like records a like on an attend and notifies its author. One like per
// user per attend; a second like is a client error.
func (s *AttendService) Like(attendID, userID uint) error {
	attend, err := s.getAttend(attendID)
	if err != nil {
		return err
	}

	liked, err := s.likes.HasUserLiked(attendID, userID)
	if err != nil {
		return err
	}
	if liked {
		return fmt.Errorf("attend %d: %w", attendID, ErrAlreadyLiked)
	}

	if err := s.likes.CreateLike(&models.AttendLike{AttendID: attendID, UserID: userID}); err != nil {
		return err
	}

	// The challenge may already be hard-deleted; keep the notice readable.
	title := fallbackNoticeSubject
	if challenge, chErr := s.challenges.GetChallengeByID(attend.ChallengeID); chErr == nil {
		title = challenge.Title
	}
	if err := s.notices.Emit(string(models.CategoryAttend), models.VerbLike, attend.UserID, title, "", &attend.ID); err != nil {
		log.Printf("like notice emission failed (attend=%d): %v", attendID, err)
	}
	return nil
}

// Unlike removes a user's like from an attend.
func (s *AttendService) Unlike(attendID, userID uint) error {
	if _, err := s.getAttend(attendID); err != nil {
		return err
	}
	return s.likes.DeleteLike(attendID, userID)
}

// LikeCount returns the number of likes on an attend.
func (s *AttendService) LikeCount(attendID uint) (int64, error) {
	return s.likes.GetLikesCountByAttendID(attendID)
}

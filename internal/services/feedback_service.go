package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// FeedbackService handles free-text feedback on submitted attends.
// Author-or-admin authorization lives in the handler layer.
type FeedbackService struct {
	feedbacks  repositories.FeedbackRepository
	attends    repositories.AttendRepository
	challenges repositories.ChallengeRepository
	notices    *NoticeService
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, attendRepo repositories.AttendRepository, challengeRepo repositories.ChallengeRepository, noticeService *NoticeService) *FeedbackService {
	return &FeedbackService{
		feedbacks:  feedbackRepo,
		attends:    attendRepo,
		challenges: challengeRepo,
		notices:    noticeService,
	}
}

func (s *FeedbackService) getFeedback(id uint) (*models.Feedback, error) {
	feedback, err := s.feedbacks.GetFeedbackByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("feedback %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return feedback, nil
}

// Get returns a single feedback by id.
func (s *FeedbackService) Get(id uint) (*models.Feedback, error) {
	return s.getFeedback(id)
}

// Create leaves feedback on an attend and notifies the attend's author.
func (s *FeedbackService) Create(attendID, authorID uint, content string) (*models.Feedback, error) {
	attend, err := s.attends.GetAttendByID(attendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attend %d not found: %w", attendID, ErrNotFound)
		}
		return nil, err
	}

	feedback := &models.Feedback{
		AttendID: attendID,
		UserID:   authorID,
		Content:  content,
	}
	if err := s.feedbacks.CreateFeedback(feedback); err != nil {
		return nil, err
	}

	title := fallbackNoticeSubject
	if challenge, chErr := s.challenges.GetChallengeByID(attend.ChallengeID); chErr == nil {
		title = challenge.Title
	}
	if err := s.notices.Emit(string(models.CategoryFeedback), models.VerbFeedback, attend.UserID, title, "", &attend.ID); err != nil {
		log.Printf("feedback notice emission failed (attend=%d): %v", attendID, err)
	}
	return feedback, nil
}

// Update replaces the feedback content.
func (s *FeedbackService) Update(id uint, content string) (*models.Feedback, error) {
	feedback, err := s.getFeedback(id)
	if err != nil {
		return nil, err
	}
	feedback.Content = content
	if err := s.feedbacks.UpdateFeedback(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// Delete removes a feedback.
func (s *FeedbackService) Delete(id uint) error {
	if _, err := s.getFeedback(id); err != nil {
		return err
	}
	return s.feedbacks.DeleteFeedback(id)
}

// ListByAttend returns all feedback on an attend, oldest first.
func (s *FeedbackService) ListByAttend(attendID uint) ([]models.Feedback, error) {
	if _, err := s.attends.GetAttendByID(attendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attend %d not found: %w", attendID, ErrNotFound)
		}
		return nil, err
	}
	return s.feedbacks.GetFeedbacksByAttendID(attendID)
}

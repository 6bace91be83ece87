package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/pagination"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// ChallengeService orchestrates the challenge lifecycle:
// PENDING -> {APPROVED, REJECTED, CANCELLED, DELETED}, APPROVED -> {CANCELLED, DELETED}.
// Hard delete is a destructive out-of-band transition available from any state.
type ChallengeService struct {
	challenges repositories.ChallengeRepository
	notices    *NoticeService
}

// NewChallengeService creates a new ChallengeService
func NewChallengeService(challengeRepo repositories.ChallengeRepository, noticeService *NoticeService) *ChallengeService {
	return &ChallengeService{
		challenges: challengeRepo,
		notices:    noticeService,
	}
}

// emit reports a lifecycle action to the challenge owner. Emission failure is
// logged, never allowed to fail the already-committed mutation.
func (s *ChallengeService) emit(verb models.NoticeVerb, recipientID uint, title, reason string) {
	if err := s.notices.Emit(string(models.CategoryChallenge), verb, recipientID, title, reason, nil); err != nil {
		log.Printf("challenge notice emission failed (verb=%s recipient=%d): %v", verb, recipientID, err)
	}
}

func (s *ChallengeService) getChallenge(id uint) (*models.Challenge, error) {
	challenge, err := s.challenges.GetChallengeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("challenge %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return challenge, nil
}

// Get returns a single challenge by id.
func (s *ChallengeService) Get(id uint) (*models.Challenge, error) {
	return s.getChallenge(id)
}

// Create persists a new challenge as PENDING with every flag cleared.
// Creation emits no notice; moderation notices only follow admin transitions.
func (s *ChallengeService) Create(req models.CreateChallengeRequest, ownerID uint) (*models.Challenge, error) {
	field := models.ChallengeField(req.Field)
	if !models.ValidField(field) {
		return nil, fmt.Errorf("%w: unknown challenge field %q", ErrInvalidInput, req.Field)
	}
	typ := models.ChallengeType(req.Type)
	if !models.ValidType(typ) {
		return nil, fmt.Errorf("%w: unknown challenge type %q", ErrInvalidInput, req.Type)
	}
	capacity, err := strconv.Atoi(req.Capacity)
	if err != nil || capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be a positive count, got %q", ErrInvalidInput, req.Capacity)
	}

	challenge := &models.Challenge{
		Title:    req.Title,
		Source:   req.Source,
		Content:  req.Content,
		Field:    field,
		Type:     typ,
		Status:   models.StatusPending,
		Deadline: req.Deadline,
		Capacity: req.Capacity,
		UserID:   ownerID,
	}
	if err := s.challenges.CreateChallenge(challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// Update applies a partial field update and notifies the owner.
func (s *ChallengeService) Update(id uint, req models.UpdateChallengeRequest) (*models.Challenge, error) {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		challenge.Title = req.Title
	}
	if req.Source != "" {
		challenge.Source = req.Source
	}
	if req.Field != "" {
		field := models.ChallengeField(req.Field)
		if !models.ValidField(field) {
			return nil, fmt.Errorf("%w: unknown challenge field %q", ErrInvalidInput, req.Field)
		}
		challenge.Field = field
	}
	if req.Type != "" {
		typ := models.ChallengeType(req.Type)
		if !models.ValidType(typ) {
			return nil, fmt.Errorf("%w: unknown challenge type %q", ErrInvalidInput, req.Type)
		}
		challenge.Type = typ
	}
	if req.Deadline != nil {
		challenge.Deadline = *req.Deadline
	}
	if req.Capacity != "" {
		if capacity, convErr := strconv.Atoi(req.Capacity); convErr != nil || capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be a positive count, got %q", ErrInvalidInput, req.Capacity)
		}
		challenge.Capacity = req.Capacity
	}
	if req.Content != "" {
		challenge.Content = req.Content
	}

	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return nil, err
	}

	s.emit(models.VerbModify, challenge.UserID, challenge.Title, "")
	return challenge, nil
}

// Cancel closes a challenge and moves it to CANCELLED.
func (s *ChallengeService) Cancel(id uint) (*models.Challenge, error) {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return nil, err
	}

	challenge.IsClose = true
	challenge.Status = models.StatusCancelled
	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return nil, err
	}

	s.emit(models.VerbCancel, challenge.UserID, challenge.Title, "")
	return challenge, nil
}

// SoftDelete marks a challenge deleted, keeping the row for audit.
func (s *ChallengeService) SoftDelete(id uint, reason string) (*models.Challenge, error) {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return nil, err
	}

	challenge.IsDelete = true
	challenge.Status = models.StatusDeleted
	challenge.DeleteReason = &reason
	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return nil, err
	}

	s.emit(models.VerbDelete, challenge.UserID, challenge.Title, reason)
	return challenge, nil
}

// HardDelete physically removes the challenge row, bypassing soft delete.
func (s *ChallengeService) HardDelete(id uint) error {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return err
	}

	if err := s.challenges.DeleteChallenge(id); err != nil {
		return err
	}

	s.emit(models.VerbPurge, challenge.UserID, challenge.Title, "")
	return nil
}

// ChallengeListQuery carries the user-facing inquiry parameters.
type ChallengeListQuery struct {
	Keyword  string
	Field    string
	Type     string
	Status   string
	Page     int
	PageSize int
}

// List returns one page of challenges matching the query; soft-deleted rows
// never appear.
func (s *ChallengeService) List(q ChallengeListQuery) ([]models.Challenge, pagination.PageInfo, error) {
	p, err := pagination.New(q.Page, q.PageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter := repositories.ChallengeFilter{Keyword: q.Keyword}
	if q.Field != "" {
		field := models.ChallengeField(q.Field)
		if !models.ValidField(field) {
			return nil, pagination.PageInfo{}, fmt.Errorf("%w: unknown challenge field %q", ErrInvalidInput, q.Field)
		}
		filter.Field = field
	}
	if q.Type != "" {
		typ := models.ChallengeType(q.Type)
		if !models.ValidType(typ) {
			return nil, pagination.PageInfo{}, fmt.Errorf("%w: unknown challenge type %q", ErrInvalidInput, q.Type)
		}
		filter.Type = typ
	}
	if q.Status != "" {
		status, trErr := TranslateStatus(q.Status)
		if trErr != nil {
			return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, trErr)
		}
		filter.Status = status
	}

	challenges, total, err := s.challenges.ListChallenges(filter, p.Offset(), p.PageSize, "")
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}
	return challenges, p.PageOf(total), nil
}

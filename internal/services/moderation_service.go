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

// ModerationService is the admin approve/reject flow over pending challenges
// plus the flattened admin listing.
type ModerationService struct {
	challenges repositories.ChallengeRepository
	attends    repositories.AttendRepository
	notices    *NoticeService
}

// NewModerationService creates a new ModerationService
func NewModerationService(challengeRepo repositories.ChallengeRepository, attendRepo repositories.AttendRepository, noticeService *NoticeService) *ModerationService {
	return &ModerationService{
		challenges: challengeRepo,
		attends:    attendRepo,
		notices:    noticeService,
	}
}

func (s *ModerationService) getChallenge(id uint) (*models.Challenge, error) {
	challenge, err := s.challenges.GetChallengeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("challenge %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return challenge, nil
}

func (s *ModerationService) emit(verb models.NoticeVerb, recipientID uint, title, reason string) {
	if err := s.notices.Emit(string(models.CategoryApproval), verb, recipientID, title, reason, nil); err != nil {
		log.Printf("approval notice emission failed (verb=%s recipient=%d): %v", verb, recipientID, err)
	}
}

// Approve marks a challenge approved, clearing any prior rejection, and
// stamps the acting admin.
func (s *ModerationService) Approve(id, adminID uint) (*models.Challenge, error) {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return nil, err
	}

	challenge.IsApprove = true
	challenge.IsReject = false
	challenge.RejectContent = nil
	challenge.Status = models.StatusApproved
	challenge.AdminID = &adminID
	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return nil, err
	}

	s.emit(models.VerbApprove, challenge.UserID, challenge.Title, "")
	return challenge, nil
}

// Reject marks a challenge rejected with the admin's reason.
func (s *ModerationService) Reject(id, adminID uint, reason string) (*models.Challenge, error) {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return nil, err
	}

	challenge.IsReject = true
	challenge.IsApprove = false
	challenge.RejectContent = &reason
	challenge.Status = models.StatusRejected
	challenge.AdminID = &adminID
	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return nil, err
	}

	s.emit(models.VerbReject, challenge.UserID, challenge.Title, reason)
	return challenge, nil
}

// AdminChallengeRow is the flattened admin listing view.
type AdminChallengeRow struct {
	No              int                    `json:"no"`
	ChallengeID     uint                   `json:"challenge_id"`
	Title           string                 `json:"title"`
	Field           models.ChallengeField  `json:"field"`
	Type            models.ChallengeType   `json:"type"`
	Status          models.ChallengeStatus `json:"status"`
	Participants    int64                  `json:"participants"`
	MaxParticipants int                    `json:"maxParticipants"`
}

// AdminListQuery carries the admin listing parameters. StatusToken and
// SortToken are the localized tokens resolved by the status translator.
type AdminListQuery struct {
	Keyword     string
	StatusToken string
	SortToken   string
	Page        int
	PageSize    int
}

// List composes keyword/status filters, localized sort and pagination, then
// reshapes each row into the admin view with its submitted attend count.
func (s *ModerationService) List(q AdminListQuery) ([]AdminChallengeRow, pagination.PageInfo, error) {
	p, err := pagination.New(q.Page, q.PageSize)
	if err != nil {
		return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter := repositories.ChallengeFilter{Keyword: q.Keyword}
	if q.StatusToken != "" {
		status, trErr := TranslateStatus(q.StatusToken)
		if trErr != nil {
			return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, trErr)
		}
		filter.Status = status
	}

	order := ""
	if q.SortToken != "" {
		ordering, trErr := TranslateSort(q.SortToken)
		if trErr != nil {
			return nil, pagination.PageInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, trErr)
		}
		order = ordering.Clause()
	}

	challenges, total, err := s.challenges.ListChallenges(filter, p.Offset(), p.PageSize, order)
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}

	rows := make([]AdminChallengeRow, len(challenges))
	for i, ch := range challenges {
		participants, cntErr := s.attends.CountSubmitted(ch.ID)
		if cntErr != nil {
			return nil, pagination.PageInfo{}, cntErr
		}
		maxParticipants, _ := strconv.Atoi(ch.Capacity)
		rows[i] = AdminChallengeRow{
			No:              p.Offset() + i + 1,
			ChallengeID:     ch.ID,
			Title:           ch.Title,
			Field:           ch.Field,
			Type:            ch.Type,
			Status:          ch.Status,
			Participants:    participants,
			MaxParticipants: maxParticipants,
		}
	}
	return rows, p.PageOf(total), nil
}

// AdminChallengeDetail is the flattened admin detail view.
type AdminChallengeDetail struct {
	ChallengeID     uint                   `json:"challenge_id"`
	Title           string                 `json:"title"`
	Source          string                 `json:"source"`
	Content         string                 `json:"content"`
	Field           models.ChallengeField  `json:"field"`
	Type            models.ChallengeType   `json:"type"`
	Status          models.ChallengeStatus `json:"status"`
	Deadline        string                 `json:"deadline"`
	OwnerID         uint                   `json:"owner_id"`
	AdminID         *uint                  `json:"admin_id,omitempty"`
	RejectContent   *string                `json:"reject_content,omitempty"`
	Participants    int64                  `json:"participants"`
	MaxParticipants int                    `json:"maxParticipants"`
}

// Detail returns the admin detail view of one challenge.
func (s *ModerationService) Detail(id uint) (*AdminChallengeDetail, error) {
	challenge, err := s.getChallenge(id)
	if err != nil {
		return nil, err
	}
	participants, err := s.attends.CountSubmitted(challenge.ID)
	if err != nil {
		return nil, err
	}
	maxParticipants, _ := strconv.Atoi(challenge.Capacity)
	return &AdminChallengeDetail{
		ChallengeID:     challenge.ID,
		Title:           challenge.Title,
		Source:          challenge.Source,
		Content:         challenge.Content,
		Field:           challenge.Field,
		Type:            challenge.Type,
		Status:          challenge.Status,
		Deadline:        challenge.Deadline.Format("2006-01-02"),
		OwnerID:         challenge.UserID,
		AdminID:         challenge.AdminID,
		RejectContent:   challenge.RejectContent,
		Participants:    participants,
		MaxParticipants: maxParticipants,
	}, nil
}

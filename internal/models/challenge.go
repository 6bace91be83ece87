package models

import "time"

type ChallengeField string
type ChallengeType string
type ChallengeStatus string

const (
	FieldTranslation ChallengeField = "번역"
	FieldStudy       ChallengeField = "학습"
	FieldWriting     ChallengeField = "글쓰기"

	TypePersonal ChallengeType = "개인"
	TypeGroup    ChallengeType = "그룹"

	StatusPending   ChallengeStatus = "PENDING"
	StatusApproved  ChallengeStatus = "APPROVED"
	StatusRejected  ChallengeStatus = "REJECTED"
	StatusCancelled ChallengeStatus = "CANCELLED"
	StatusDeleted   ChallengeStatus = "DELETED"
)

// ValidField reports whether f is a member of the challenge field enum.
func ValidField(f ChallengeField) bool {
	switch f {
	case FieldTranslation, FieldStudy, FieldWriting:
		return true
	}
	return false
}

// ValidType reports whether t is a member of the challenge type enum.
func ValidType(t ChallengeType) bool {
	switch t {
	case TypePersonal, TypeGroup:
		return true
	}
	return false
}

// Challenge represents a study/translation task users can join.
// At most one of the approve/reject/pending flag states is active at a time;
// soft-deleted rows are excluded from every listing regardless of status.
type Challenge struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Title         string          `json:"title" gorm:"size:255;not null;index"`
	Source        string          `json:"source"`
	Content       string          `json:"content" gorm:"type:text"`
	Field         ChallengeField  `json:"field" gorm:"size:20;index"`
	Type          ChallengeType   `json:"type" gorm:"size:20;index"`
	Status        ChallengeStatus `json:"status" gorm:"size:20;index"`
	Deadline      time.Time       `json:"deadline" gorm:"index"`
	Capacity      string          `json:"capacity"` // Max participant count, kept as the raw submitted string
	UserID        uint            `json:"user_id" gorm:"index"`
	AdminID       *uint           `json:"admin_id,omitempty"`
	IsDelete      bool            `json:"is_delete" gorm:"default:false;index"`
	IsClose       bool            `json:"is_close" gorm:"default:false"`
	IsApprove     bool            `json:"is_approve" gorm:"default:false"`
	IsReject      bool            `json:"is_reject" gorm:"default:false"`
	RejectContent *string         `json:"reject_content,omitempty"`
	DeleteReason  *string         `json:"delete_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateChallengeRequest defines the request body for creating a challenge
type CreateChallengeRequest struct {
	Title    string    `json:"title" validate:"required,min=1,max=255"`
	Source   string    `json:"source" validate:"required"`
	Field    string    `json:"field" validate:"required"`
	Type     string    `json:"type" validate:"required"`
	Deadline time.Time `json:"deadline" validate:"required"`
	Capacity string    `json:"capacity" validate:"required"`
	Content  string    `json:"content" validate:"required,min=1"`
}

// UpdateChallengeRequest defines the request body for partially updating a challenge
type UpdateChallengeRequest struct {
	Title    string     `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Source   string     `json:"source,omitempty"`
	Field    string     `json:"field,omitempty"`
	Type     string     `json:"type,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Capacity string     `json:"capacity,omitempty"`
	Content  string     `json:"content,omitempty"`
}

// DeleteChallengeRequest defines the request body for soft-deleting a challenge
type DeleteChallengeRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

// RejectChallengeRequest defines the request body for an admin reject
type RejectChallengeRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

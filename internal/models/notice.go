package models

import "time"

// NoticeCategory tags a notice with the kind of domain action that produced it.
type NoticeCategory string

const (
	CategoryChallenge NoticeCategory = "CHALLENGE"
	CategoryAttend    NoticeCategory = "ATTEND"
	CategoryFeedback  NoticeCategory = "FEEDBACK"
	CategoryApproval  NoticeCategory = "APPROVAL"
	CategoryDeadline  NoticeCategory = "DEADLINE"
	CategoryUnknown   NoticeCategory = "UNKNOWN"
)

// ParseNoticeCategory resolves a category string to its enum value.
// Unrecognized strings fall back to CategoryUnknown rather than failing:
// notice emission must never block the primary business transaction.
func ParseNoticeCategory(s string) NoticeCategory {
	switch NoticeCategory(s) {
	case CategoryChallenge, CategoryAttend, CategoryFeedback, CategoryApproval, CategoryDeadline:
		return NoticeCategory(s)
	}
	return CategoryUnknown
}

// NoticeVerb is the localized action word interpolated into notice content.
type NoticeVerb string

const (
	VerbModify   NoticeVerb = "수정"
	VerbCancel   NoticeVerb = "취소"
	VerbDelete   NoticeVerb = "삭제"
	VerbPurge    NoticeVerb = "완전 삭제"
	VerbApprove  NoticeVerb = "승인"
	VerbReject   NoticeVerb = "거절"
	VerbSubmit   NoticeVerb = "제출"
	VerbLike     NoticeVerb = "좋아요"
	VerbFeedback NoticeVerb = "피드백 등록"
)

// Notice is a persisted, typed, user-addressed notification record.
// Created only by the notice emitter; once read, is_read never goes back.
type Notice struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"` // Recipient
	Category  NoticeCategory `json:"category" gorm:"size:20;index"`
	Content   string         `json:"content" gorm:"type:text"`
	IsRead    bool           `json:"is_read" gorm:"default:false;index"`
	AttendID  *uint          `json:"attend_id,omitempty"` // Related attend, when the action concerns one
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt time.Time      `json:"updated_at"`
}

package models

import "time"

// Attend is a user's participation record / submitted work for a challenge.
// Only rows with is_save = false and is_delete = false count toward
// participation or appear in listings.
type Attend struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChallengeID uint      `json:"challenge_id" gorm:"index;not null"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	IsSave      bool      `json:"is_save" gorm:"default:false"` // Draft flag; saved drafts are invisible
	IsDelete    bool      `json:"is_delete" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAttendRequest defines the request body for submitting or drafting work
type CreateAttendRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	IsSave  bool   `json:"is_save"`
}

// AttendLike records one user's like on one attend.
type AttendLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AttendID  uint      `json:"attend_id" gorm:"index;not null;uniqueIndex:idx_attend_user"`
	UserID    uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_attend_user"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// Feedback is free-text commentary left on a submitted attend.
// Mutable and deletable only by its author or an admin.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AttendID  uint      `json:"attend_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text" validate:"required,min=1,max=2000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFeedbackRequest defines the request body for creating feedback
type CreateFeedbackRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// UpdateFeedbackRequest defines the request body for updating feedback
type UpdateFeedbackRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

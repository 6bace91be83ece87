package services

import (
	"fmt"

	"github.com/daheemang/challenge-platform/backend/internal/models"
)

// Localized status filter tokens accepted by the admin challenge listing.
const (
	StatusTokenApproved  = "승인"
	StatusTokenRejected  = "거절"
	StatusTokenCancelled = "취소"
	StatusTokenPending   = "대기중"
)

// Localized sort tokens accepted by the admin challenge listing.
const (
	SortTokenSubmission = "신청순" // submission time ascending
	SortTokenDeadline   = "마감순" // deadline ascending
	SortTokenLatest     = "최신순" // creation time descending
)

// Ordering is a resolved sort clause.
type Ordering struct {
	Column    string
	Direction string
}

// Clause renders the ordering as an ORM order expression.
func (o Ordering) Clause() string {
	return o.Column + " " + o.Direction
}

// TranslateStatus maps a localized status token to its canonical enum value.
// Tokens outside the closed set are rejected before they can reach the store,
// which would otherwise fail on its own enum with a much less useful error.
func TranslateStatus(token string) (models.ChallengeStatus, error) {
	switch token {
	case StatusTokenApproved:
		return models.StatusApproved, nil
	case StatusTokenRejected:
		return models.StatusRejected, nil
	case StatusTokenCancelled:
		return models.StatusCancelled, nil
	case StatusTokenPending:
		return models.StatusPending, nil
	}
	return "", fmt.Errorf("%w: unknown status token %q", ErrInvalidEnumValue, token)
}

// TranslateSort maps a localized sort token to an ordering clause.
func TranslateSort(token string) (Ordering, error) {
	switch token {
	case SortTokenSubmission:
		return Ordering{Column: "created_at", Direction: "ASC"}, nil
	case SortTokenDeadline:
		return Ordering{Column: "deadline", Direction: "ASC"}, nil
	case SortTokenLatest:
		return Ordering{Column: "created_at", Direction: "DESC"}, nil
	}
	return Ordering{}, fmt.Errorf("%w: unknown sort token %q", ErrInvalidEnumValue, token)
}

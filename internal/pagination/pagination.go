// Package pagination computes offset-based paging parameters shared by
// every list endpoint.
package pagination

import (
	"errors"
	"fmt"
	"math"
)

// MaxPageSize is the largest page size any list endpoint accepts.
const MaxPageSize = 100

// ErrInvalidInput is returned when page or pageSize fall outside their bounds.
var ErrInvalidInput = errors.New("invalid pagination input")

// Params holds validated paging inputs.
type Params struct {
	Page     int
	PageSize int
}

// PageInfo is the pagination block of the response envelope.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// New validates page and pageSize and returns paging parameters.
// page must be >= 1 and pageSize must be in [1, MaxPageSize].
func New(page, pageSize int) (Params, error) {
	if page < 1 {
		return Params{}, fmt.Errorf("%w: page must be a positive integer, got %d", ErrInvalidInput, page)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Params{}, fmt.Errorf("%w: pageSize must be between 1 and %d, got %d", ErrInvalidInput, MaxPageSize, pageSize)
	}
	return Params{Page: page, PageSize: pageSize}, nil
}

// Offset returns the number of rows to skip before the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageOf computes the response page info for a total row count.
// Zero rows means zero pages, not one.
func (p Params) PageOf(totalCount int64) PageInfo {
	return PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: totalCount,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(p.PageSize))),
	}
}

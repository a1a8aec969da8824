package services

import "math"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Pagination is the metadata attached to every paginated listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination normalises page/limit and derives the page count.
func NewPagination(page, limit int, total int64) Pagination {
	page, limit = normalisePage(page, limit)
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

func normalisePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

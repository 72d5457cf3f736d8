package model

// Pagination mirrors the backend pagination block on the user list and is
// derived locally for the activity endpoints, which only return a total.
type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPagination derives the full block from page, limit and total.
// TotalPages is ceil(total/limit); total == 0 yields zero pages, which the
// templates use to suppress the controls entirely.
func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = 1
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Clamp applies the page-change contract: a target outside [1, TotalPages]
// leaves the current page untouched. A page already past a shrunk TotalPages
// is deliberately not corrected here.
func (p Pagination) Clamp(n int) int {
	if n < 1 || n > p.TotalPages {
		return p.Page
	}
	return n
}

// Prev and Next are the targets of the arrow controls; the templates only
// follow them when the corresponding Has flag allows it.
func (p Pagination) Prev() int { return p.Page - 1 }
func (p Pagination) Next() int { return p.Page + 1 }

// Pages lists 1..TotalPages for the numbered controls.
func (p Pagination) Pages() []int {
	if p.TotalPages <= 0 {
		return nil
	}
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// ShowingFrom and ShowingTo feed the "Showing X to Y of Z" line.
func (p Pagination) ShowingFrom() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Page-1)*p.Limit + 1
}

func (p Pagination) ShowingTo() int {
	to := p.Page * p.Limit
	if to > p.Total {
		to = p.Total
	}
	return to
}

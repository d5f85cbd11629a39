package dto

import "math"

// Pagination is the envelope shared by every list response.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

func (p *Pagination) FromQuery(params QueryParams, totalCount int) {
	totalPages := 1
	if totalCount > 0 && params.PageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(params.PageSize)))
	}

	p.CurrentPage = params.Page
	p.PageSize = params.PageSize
	p.TotalCount = totalCount
	p.TotalPages = totalPages
	p.HasPrevious = params.Page > 1
	p.HasNext = params.Page < totalPages
}

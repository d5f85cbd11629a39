package dto

import (
	"net/http"
	"roombook/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page      int    `json:"page"       validate:"omitempty"`
	PageSize  int    `json:"page_size"  validate:"omitempty"`
	SortBy    string `json:"sort_by"    validate:"omitempty"`
	SortOrder string `json:"sort_order" validate:"omitempty,oneof=ASC DESC"`
	Search    string `json:"search"     validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request and clamps the
// paging values: page is at least 1, pageSize is clamped to [1, 50] with a
// default of 10. Out-of-range and malformed values fall back silently.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req)
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.PageSize = constant.DefaultValuePageSize
	q.SortOrder = SortDirDesc

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if size := queryParams.Get(constant.RequestParamPageSize); size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil && sizeInt > 0 {
			q.PageSize = min(sizeInt, constant.MaxValuePageSize)
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if strings.EqualFold(queryParams.Get(constant.RequestParamSortOrder), "asc") {
		q.SortOrder = SortDirAsc
	}

	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))
}

// ResolveSort maps the client-facing sortBy key to a real column through the
// given allow-list. Keys match case-insensitively; anything unknown falls
// back to created_at so arbitrary column names never reach the query.
func (q *QueryParams) ResolveSort(sortable map[string]string) {
	column, ok := sortable[strings.ToLower(q.SortBy)]
	if !ok {
		column = constant.DefaultValueSortBy
	}

	q.SortBy = column
}

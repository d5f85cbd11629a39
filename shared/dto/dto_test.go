package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  dto.QueryParams
	}{
		{
			name:  "defaults",
			query: "",
			want:  dto.QueryParams{Page: 1, PageSize: 10, SortOrder: dto.SortDirDesc},
		},
		{
			name:  "page size above maximum is clamped",
			query: "page=2&pageSize=1000",
			want:  dto.QueryParams{Page: 2, PageSize: 50, SortOrder: dto.SortDirDesc},
		},
		{
			name:  "invalid page falls back",
			query: "page=0&pageSize=-5",
			want:  dto.QueryParams{Page: 1, PageSize: 10, SortOrder: dto.SortDirDesc},
		},
		{
			name:  "malformed numbers fall back",
			query: "page=abc&pageSize=xyz",
			want:  dto.QueryParams{Page: 1, PageSize: 10, SortOrder: dto.SortDirDesc},
		},
		{
			name:  "sort order asc is case-insensitive",
			query: "sortOrder=AsC&sortBy=name",
			want:  dto.QueryParams{Page: 1, PageSize: 10, SortBy: "name", SortOrder: dto.SortDirAsc},
		},
		{
			name:  "unknown sort order stays desc",
			query: "sortOrder=sideways",
			want:  dto.QueryParams{Page: 1, PageSize: 10, SortOrder: dto.SortDirDesc},
		},
		{
			name:  "search is trimmed",
			query: "search=%20aula%20",
			want:  dto.QueryParams{Page: 1, PageSize: 10, SortOrder: dto.SortDirDesc, Search: "aula"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)

			q := dto.QueryParams{}
			q.FromRequest(r)

			assert.Equal(t, tt.want, q)
		})
	}
}

func TestQueryParams_ResolveSort(t *testing.T) {
	sortable := map[string]string{
		"starttime": "start_time",
		"roomname":  "room_name",
	}

	tests := []struct {
		name   string
		sortBy string
		want   string
	}{
		{name: "known key", sortBy: "startTime", want: "start_time"},
		{name: "case-insensitive", sortBy: "ROOMNAME", want: "room_name"},
		{name: "unknown key falls back", sortBy: "password", want: "created_at"},
		{name: "empty falls back", sortBy: "", want: "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := dto.QueryParams{SortBy: tt.sortBy}
			q.ResolveSort(sortable)

			assert.Equal(t, tt.want, q.SortBy)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
	}{
		{
			name:      "eq",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Pending", Table: "bookings"},
			wantWhere: "bookings.status = :status",
		},
		{
			name:      "less",
			filter:    dto.Filter{ArgName: "overlap_end", Field: "start_time", Operator: dto.FilterOperatorLess, Value: "x", Table: "bookings"},
			wantWhere: "bookings.start_time < :overlap_end",
		},
		{
			name:      "greater",
			filter:    dto.Filter{ArgName: "overlap_start", Field: "end_time", Operator: dto.FilterOperatorGreater, Value: "x", Table: "bookings"},
			wantWhere: "bookings.end_time > :overlap_start",
		},
		{
			name:      "less or equal",
			filter:    dto.Filter{Field: "end_time", Operator: dto.FilterOperatorLessEq, Value: "x", Table: "bookings"},
			wantWhere: "bookings.end_time <= :end_time",
		},
		{
			name:      "greater or equal",
			filter:    dto.Filter{Field: "start_time", Operator: dto.FilterOperatorGreaterEq, Value: "x", Table: "bookings"},
			wantWhere: "bookings.start_time >= :start_time",
		},
		{
			name:      "not eq",
			filter:    dto.Filter{ArgName: "exclude_id", Field: "id", Operator: dto.FilterOperatorNotEq, Value: "id-1", Table: "bookings"},
			wantWhere: "bookings.id != :exclude_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Len(t, args, 1)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "room_name", Operator: dto.FilterOperatorEq, Value: "A 301", Table: "bookings"},
				dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Pending", Table: "bookings"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Contains(t, where, " AND ")
		assert.Len(t, args, 2)
	})

	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("nested groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_name", Operator: dto.FilterOperatorEq, Value: "A 301", Table: "bookings"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "search_room_name", Field: "room_name", Operator: dto.FilterOperatorLike, Value: "aula", Table: "bookings"},
						dto.Filter{ArgName: "search_booked_by", Field: "booked_by", Operator: dto.FilterOperatorLike, Value: "aula", Table: "bookings"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Contains(t, where, " AND ")
		assert.Contains(t, where, " OR ")
		assert.Len(t, args, 3)
	})
}

func TestPagination_FromQuery(t *testing.T) {
	tests := []struct {
		name       string
		params     dto.QueryParams
		totalCount int
		want       dto.Pagination
	}{
		{
			name:       "first of several pages",
			params:     dto.QueryParams{Page: 1, PageSize: 10},
			totalCount: 25,
			want:       dto.Pagination{CurrentPage: 1, PageSize: 10, TotalCount: 25, TotalPages: 3, HasPrevious: false, HasNext: true},
		},
		{
			name:       "middle page",
			params:     dto.QueryParams{Page: 2, PageSize: 10},
			totalCount: 25,
			want:       dto.Pagination{CurrentPage: 2, PageSize: 10, TotalCount: 25, TotalPages: 3, HasPrevious: true, HasNext: true},
		},
		{
			name:       "last page",
			params:     dto.QueryParams{Page: 3, PageSize: 10},
			totalCount: 25,
			want:       dto.Pagination{CurrentPage: 3, PageSize: 10, TotalCount: 25, TotalPages: 3, HasPrevious: true, HasNext: false},
		},
		{
			name:       "empty result still reports one page",
			params:     dto.QueryParams{Page: 1, PageSize: 10},
			totalCount: 0,
			want:       dto.Pagination{CurrentPage: 1, PageSize: 10, TotalCount: 0, TotalPages: 1, HasPrevious: false, HasNext: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dto.Pagination{}
			p.FromQuery(tt.params, tt.totalCount)

			assert.Equal(t, tt.want, p)
		})
	}
}

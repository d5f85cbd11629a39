package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/shared"
	"roombook/shared/constant"
	"roombook/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "empty result keeps one page", total: 0, limit: 10, want: 1},
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "rounds up", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "lowercases", email: "Admin@Campus.Local", want: "admin@campus.local"},
		{name: "trims whitespace", email: "  admin@campus.local  ", want: "admin@campus.local"},
		{name: "already normalized", email: "admin@campus.local", want: "admin@campus.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.NormalizeEmail(tt.email))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name        string  `db:"name"`
		Floor       int     `db:"floor"`
		Description *string `db:"description"`
		Ignored     string
	}

	fields := shared.TransformFields(updateRequest{Name: "A 301", Ignored: "skipped"})

	assert.Equal(t, "A 301", fields["name"])
	assert.NotContains(t, fields, "Ignored")
	assert.Contains(t, fields, constant.FieldUpdatedAt)

	// Zero values stay in the map so updates replace the row in full.
	assert.Equal(t, 0, fields["floor"])
	assert.Contains(t, fields, "description")
	assert.Nil(t, fields["description"])
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("id-1", "id", "rooms")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, "id-1", args["id"])
}

func TestSearchFilter(t *testing.T) {
	t.Run("builds OR of LIKE clauses", func(t *testing.T) {
		filter := shared.SearchFilter("aula", "rooms", "name", "building")

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "LOWER(rooms.name) LIKE LOWER(:search_name)")
		assert.Contains(t, where, "LOWER(rooms.building) LIKE LOWER(:search_building)")
		assert.Contains(t, where, " OR ")
		assert.Equal(t, "%aula%", args["search_name"])
	})

	t.Run("empty term yields empty group", func(t *testing.T) {
		filter := shared.SearchFilter("", "rooms", "name")

		where, _ := filter.GetWhereClause()

		assert.Empty(t, where)
	})
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:id-1", shared.BuildCacheKey("room:get", "id-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, PageSize: 10, SortBy: "name", SortOrder: dto.SortDirAsc, Search: "lab"}

	keyA := shared.BuildCacheKeyWithQuery("room:gets", params, dto.FilterGroup{})

	params.Page = 3
	keyB := shared.BuildCacheKeyWithQuery("room:gets", params, dto.FilterGroup{})

	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "room:gets")
}

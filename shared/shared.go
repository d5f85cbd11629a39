package shared

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"roombook/shared/cache"
	"roombook/shared/constant"
	"roombook/shared/dto"
	"roombook/shared/timezone"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// NormalizeEmail canonicalizes an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TransformFields converts every db-tagged field of a struct into a map of
// updated columns, stamping updated_at on every call. Zero values are kept
// so an update replaces the row in full: floor 0 overwrites the old floor
// and a nil description clears the stored one.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// SearchFilter builds a case-insensitive substring match across the given
// columns, OR-ed together. An empty term yields an empty group.
func SearchFilter(term, table string, fields ...string) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

	if term == "" {
		return group
	}

	for _, field := range fields {
		group.Filters = append(group.Filters, dto.Filter{
			ArgName:  "search_" + field,
			Field:    field,
			Value:    term,
			Operator: dto.FilterOperatorLike,
			Table:    table,
		})
	}

	return group
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the list prefix plus the
// query parameters and filter, so distinct pages and filters cache apart.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte{}
	}

	return strings.Join([]string{
		prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.PageSize),
		params.SortBy,
		params.SortOrder,
		params.Search,
		where,
		string(encoded),
	}, ":")
}

// InvalidateCaches clears every cached entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

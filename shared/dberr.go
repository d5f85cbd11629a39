package shared

import (
	"errors"
	"roombook/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err stems from a Postgres unique
// constraint, e.g. the partial unique index on active user emails.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

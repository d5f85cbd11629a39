package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(utc)

	assert.Equal(t, timezone.GetLocation(), converted.Location())
	assert.True(t, converted.Equal(utc))
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-02-13")

	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2026-02-13", timezone.Format(parsed, "2006-01-02"))
}

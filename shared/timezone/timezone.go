package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"roombook/config"
)

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return
	}

	appLocation = loc
	log.Info().Str("timezone", name).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone. Booking
// timestamps and the created_at/updated_at stamps all flow through here.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts t to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the application timezone location.
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

package utils

import (
	"testing"

	"github.com/matryer/is"
)

func TestHaversineMiles(t *testing.T) {
	is := is.New(t)

	// Same point.
	is.Equal(HaversineMiles(41.0, 29.0, 41.0, 29.0), 0.0)

	// One degree of latitude on the same meridian is R * pi / 180.
	is.Equal(HaversineMiles(41.0, 29.0, 42.0, 29.0), 69.1)

	// Direction does not matter.
	is.Equal(
		HaversineMiles(40.7128, -74.0060, 34.0522, -118.2437),
		HaversineMiles(34.0522, -118.2437, 40.7128, -74.0060),
	)
}

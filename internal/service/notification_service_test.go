package service

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestTimeAgo(t *testing.T) {
	is := is.New(t)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	is.Equal(timeAgo(now.Add(-30*time.Second), now), "Just now")
	is.Equal(timeAgo(now.Add(-90*time.Second), now), "1m ago")
	is.Equal(timeAgo(now.Add(-59*time.Minute), now), "59m ago")
	is.Equal(timeAgo(now.Add(-3700*time.Second), now), "1h ago")
	is.Equal(timeAgo(now.Add(-23*time.Hour), now), "23h ago")
	is.Equal(timeAgo(now.Add(-25*time.Hour), now), "1d ago")
	is.Equal(timeAgo(now.Add(-6*24*time.Hour), now), "6d ago")
	is.Equal(timeAgo(now.Add(-8*24*time.Hour), now), "1w ago")
	is.Equal(timeAgo(now.Add(-30*24*time.Hour), now), "4w ago")
}

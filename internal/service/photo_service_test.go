package service

import (
	"testing"

	"github.com/matryer/is"
)

func TestPlanBatch(t *testing.T) {
	is := is.New(t)

	// Empty batch.
	_, err := planBatch(0, 0)
	is.Equal(err, ErrNoPhotos)

	// More files in one request than the ceiling allows is rejected outright.
	_, err = planBatch(0, 7)
	is.Equal(err, ErrTooManyPhotos)

	// Account already full.
	_, err = planBatch(6, 1)
	is.Equal(err, ErrTooManyPhotos)

	// Whole batch fits.
	accepted, err := planBatch(0, 6)
	is.NoErr(err)
	is.Equal(accepted, 6)

	// Batch partially fits: extras past the remaining slots are skipped.
	accepted, err = planBatch(4, 4)
	is.NoErr(err)
	is.Equal(accepted, 2)

	accepted, err = planBatch(5, 3)
	is.NoErr(err)
	is.Equal(accepted, 1)
}

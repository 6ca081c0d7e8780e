package utils

import (
	"testing"

	"github.com/matryer/is"
)

func TestSupportedImageValidation(t *testing.T) {
	is := is.New(t)

	v := NewValidator()

	type upload struct {
		ContentType string `validate:"supported_image"`
	}

	for _, mimeType := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		is.NoErr(v.Struct(upload{ContentType: mimeType}))
	}

	is.True(v.Struct(upload{ContentType: "text/plain"}) != nil)
	is.True(v.Struct(upload{ContentType: "application/pdf"}) != nil)
	is.True(v.Struct(upload{ContentType: ""}) != nil)
}

package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		want     string
	}{
		{"jpg ok", "slip.jpg", 1024, ""},
		{"jpeg ok", "slip.jpeg", 1024, ""},
		{"png ok", "slip.PNG", 1024, ""},
		{"pdf rejected", "slip.pdf", 1024, "The image field must be a file of type: jpg, jpeg, png."},
		{"no extension", "slip", 1024, "The image field must be a file of type: jpg, jpeg, png."},
		{"too large", "slip.jpg", 11 << 20, "The image field must not be greater than 10240 kilobytes."},
		{"exactly at limit", "slip.jpg", 10 << 20, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
			assert.Equal(t, tt.want, ValidateImage(fh))
		})
	}
}

func TestCoordinateBounds(t *testing.T) {
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.01))

	assert.True(t, IsValidLongitude(-180))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}

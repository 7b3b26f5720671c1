package utils

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

const maxImageSize = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateImage enforces the upload rules shared by every image field:
// jpg/jpeg/png, at most 10 MB. Returns a field-level message, empty when ok.
func ValidateImage(fh *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "The image field must be a file of type: jpg, jpeg, png."
	}
	if fh.Size > maxImageSize {
		return "The image field must not be greater than 10240 kilobytes."
	}
	return ""
}

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

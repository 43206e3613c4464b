package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

func ValidateImageFormat(filename string, allowedFormats []string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(data []byte, maxSizeInMB int) error {
	if len(data) == 0 {
		return fmt.Errorf("image is empty")
	}
	if len(data) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMB)
	}
	return nil
}

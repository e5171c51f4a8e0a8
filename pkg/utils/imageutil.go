package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/phambaophuc/watermark-cleaner/internal/models"
)

// IsSupportedImageName reports whether name ends with one of the supported
// suffixes. The match is case-sensitive and does not require a dot, so
// "xjpg" matches and "photo.JPG" does not.
func IsSupportedImageName(name string) bool {
	for _, suffix := range models.SupportedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// OutputFilename returns the name a cleaned copy of filename is written under.
func OutputFilename(filename string) string {
	return models.OutputPrefix + filename
}

func GenerateRunID() string {
	return uuid.New().String()[:8]
}

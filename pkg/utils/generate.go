package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ==================== UPLOADS ====================

// GenerateFileName builds a collision-free name for an uploaded file,
// keeping the (lower-cased) extension of the original name.
func GenerateFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if len(ext) > 10 {
		ext = ""
	}
	return uuid.New().String() + ext
}

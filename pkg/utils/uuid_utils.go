package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RandomFileToken returns a 32-character hex token used to prefix stored file names
func RandomFileToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

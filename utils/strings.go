package utils

import (
	"regexp"
	"strings"
)

// NormalizeName lowercases and trims a name or email for case-insensitive
// uniqueness comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}

package util

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9_-]`)
	slugHyphenRun  = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe identifier from a title: lowercase, whitespace
// runs to single hyphens, invalid characters stripped, repeated hyphens
// collapsed, edge hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugHyphenRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugWithSuffix appends the numeric tie-break suffix used when the store
// reports a slug collision. The first retry is "-2".
func SlugWithSuffix(base string, attempt int) string {
	return fmt.Sprintf("%s-%d", base, attempt)
}

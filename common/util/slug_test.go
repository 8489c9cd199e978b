package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"uppercase", "GO BOOTCAMP", "go-bootcamp"},
		{"whitespace runs", "  Intro   to    Go  ", "intro-to-go"},
		{"punctuation stripped", "Go & Fun: A (Gentle) Intro!", "go-fun-a-gentle-intro"},
		{"underscores kept", "snake_case_title", "snake_case_title"},
		{"repeated hyphens collapsed", "a -- b --- c", "a-b-c"},
		{"edge hyphens trimmed", "-leading and trailing-", "leading-and-trailing"},
		{"only punctuation", "!!!", ""},
		{"digits", "Batch 2025 Cohort 3", "batch-2025-cohort-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	assert.Equal(t, "go-bootcamp-2", SlugWithSuffix("go-bootcamp", 2))
	assert.Equal(t, "go-bootcamp-10", SlugWithSuffix("go-bootcamp", 10))
}

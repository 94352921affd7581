// Package validation holds input validation shared by the workflow and the
// HTTP handlers.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Field length caps for idea content.
const (
	MaxTitleLen       = 120
	MaxDescriptionLen = 4000
	MaxCategoryLen    = 50
)

// ValidateIdeaTitle checks the idea title for presence and length.
func ValidateIdeaTitle(title string) (bool, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, "Title is required"
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return false, "Title must be at most 120 characters"
	}
	return true, ""
}

// ValidateIdeaDescription checks the idea description for presence and length.
func ValidateIdeaDescription(description string) (bool, string) {
	description = strings.TrimSpace(description)
	if description == "" {
		return false, "Description is required"
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return false, "Description must be at most 4000 characters"
	}
	return true, ""
}

// ValidateIdeaCategory checks the idea category. Category is required; when
// the site config lists allowed categories the handler layer narrows further.
func ValidateIdeaCategory(category string) (bool, string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return false, "Category is required"
	}
	if utf8.RuneCountInString(category) > MaxCategoryLen {
		return false, "Category must be at most 50 characters"
	}
	return true, ""
}

// ValidateIdeaFields runs all idea content checks and returns the first
// failure message.
func ValidateIdeaFields(title, description, category string) (bool, string) {
	if ok, msg := ValidateIdeaTitle(title); !ok {
		return false, msg
	}
	if ok, msg := ValidateIdeaDescription(description); !ok {
		return false, msg
	}
	if ok, msg := ValidateIdeaCategory(category); !ok {
		return false, msg
	}
	return true, ""
}

package domain

import (
	"regexp"
	"sort"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a URL-safe project slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// SortProjects orders projects by explicit order ascending, projects without an
// order last, then newest first.
func SortProjects(projects []ProjectSummary) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		switch {
		case a.Order != nil && b.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		case a.Order != nil && b.Order == nil:
			return true
		case a.Order == nil && b.Order != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

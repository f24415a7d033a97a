package entity

import "strings"

// CategoryAll is the category wildcard.
const CategoryAll = "all"

// ConsumerContext describes who is browsing and what they are looking for.
type ConsumerContext struct {
	Query        string // Free-text search query, empty when browsing.
	CategoryID   string // Selected category; CategoryAll or empty matches everything.
	Neighborhood string // Consumer neighborhood, empty until an address is chosen.
}

// IsSearching reports whether a non-blank query was supplied.
func (c ConsumerContext) IsSearching() bool {
	return strings.TrimSpace(c.Query) != ""
}

// AllCategories reports whether the category filter is the wildcard.
func (c ConsumerContext) AllCategories() bool {
	category := strings.TrimSpace(c.CategoryID)

	return category == "" || strings.EqualFold(category, CategoryAll)
}

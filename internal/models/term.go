// Package models defines data structures for jiten
package models

// Difficulty grades a term for learners. The set is closed: values outside
// the three constants are rejected at catalog load.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties returns all recognized difficulty levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Valid reports whether d is one of the recognized difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Term is a single glossary entry. Terms are immutable once the catalog is
// built; response shapes embed or project them, never mutate them.
type Term struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`           // canonical English identifier
	LocalizedLabel   string     `json:"localizedLabel"` // Japanese label shown alongside the name
	Description      string     `json:"description"`
	Difficulty       Difficulty `json:"difficulty"`
	Tags             []string   `json:"tags"`
	Example          string     `json:"example,omitempty"` // code sample, served verbatim
	UseCases         []string   `json:"useCases,omitempty"`
	RelatedTermNames []string   `json:"relatedTermNames,omitempty"` // hints, not foreign keys
}

// HasTag reports whether the term carries the given tag (exact match).
func (t *Term) HasTag(tag string) bool {
	for _, tt := range t.Tags {
		if tt == tag {
			return true
		}
	}
	return false
}

// SharesTag reports whether the two terms have at least one tag in common.
func (t *Term) SharesTag(other *Term) bool {
	for _, tag := range t.Tags {
		if other.HasTag(tag) {
			return true
		}
	}
	return false
}

// Category is a named, ordered grouping of terms. Order is the display order.
type Category struct {
	Name  string `json:"name"`
	Terms []Term `json:"terms"`
}

// CategoryInfo is the list-view projection of a category.
// Name mirrors the raw id; DisplayName carries the resolved label.
type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
	DisplayName string `json:"displayName"`
}

// TermSummary is the compact projection used for related-term listings.
type TermSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LocalizedLabel string `json:"localizedLabel"`
}

// TermList is the response shape for term listing queries.
// Total counts the filtered set before pagination.
type TermList struct {
	Terms        []Term       `json:"terms"`
	Total        int          `json:"total"`
	HasMore      bool         `json:"hasMore"`
	Categories   []string     `json:"categories"`
	Difficulties []Difficulty `json:"difficulties"`
}

// TermDetail is a full term plus its resolved related terms.
type TermDetail struct {
	Term
	RelatedTerms []TermSummary `json:"relatedTerms"`
}

// CatalogStats is a point-in-time snapshot of catalog composition.
type CatalogStats struct {
	TotalTerms   int                `json:"totalTerms"`
	Categories   int                `json:"categories"`
	ByDifficulty map[Difficulty]int `json:"byDifficulty"` // always carries all three buckets
	ByCategory   map[string]int     `json:"byCategory"`
	LastUpdated  string             `json:"lastUpdated"` // RFC 3339, captured at call time
}

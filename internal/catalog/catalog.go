// Package catalog owns the static glossary catalog and its derived views.
// The catalog is built once at startup and never mutated afterwards; every
// accessor returns data that callers must treat as read-only.
package catalog

import (
	"fmt"

	"github.com/jiten-dev/jiten/internal/models"
)

// categoryDisplayNames resolves category ids to display labels.
// Unmapped ids fall back to the raw id.
var categoryDisplayNames = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"react":      "React",
	"nodejs":     "Node.js",
	"web":        "Web技術",
	"database":   "データベース",
	"git":        "Git・バージョン管理",
	"algorithm":  "アルゴリズム",
}

// Catalog holds the categorized terms plus the flattened view and the id
// index derived from them at load time.
type Catalog struct {
	categories []models.Category
	all        []models.Term
	byCategory map[string][]models.Term
	byID       map[string]models.Term
}

// Load builds the Catalog from the built-in definition. A structurally
// invalid definition is a startup-time hard failure: the caller must treat
// an error as fatal and refuse to serve.
func Load() (*Catalog, error) {
	return New(seedCategories())
}

// New builds a Catalog from category definitions. It validates that every
// term carries the required fields and a recognized difficulty, and that
// term ids are unique across all categories. Tags are deduplicated
// preserving first occurrence.
func New(defs []models.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]models.Category, 0, len(defs)),
		byCategory: make(map[string][]models.Term, len(defs)),
		byID:       make(map[string]models.Term),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if _, dup := c.byCategory[def.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", def.Name)
		}

		terms := make([]models.Term, 0, len(def.Terms))
		for _, t := range def.Terms {
			if err := validateTerm(t); err != nil {
				return nil, fmt.Errorf("category %q: %w", def.Name, err)
			}
			if prev, dup := c.byID[t.ID]; dup {
				return nil, fmt.Errorf("category %q: term id %q already used by %q", def.Name, t.ID, prev.Name)
			}
			t.Tags = dedupeTags(t.Tags)
			c.byID[t.ID] = t
			terms = append(terms, t)
		}

		c.byCategory[def.Name] = terms
		c.categories = append(c.categories, models.Category{Name: def.Name, Terms: terms})
		c.all = append(c.all, terms...)
	}

	return c, nil
}

// validateTerm checks the required fields of a single term definition.
func validateTerm(t models.Term) error {
	switch {
	case t.ID == "":
		return fmt.Errorf("term %q: missing id", t.Name)
	case t.Name == "":
		return fmt.Errorf("term %q: missing name", t.ID)
	case t.LocalizedLabel == "":
		return fmt.Errorf("term %q: missing localized label", t.ID)
	case t.Description == "":
		return fmt.Errorf("term %q: missing description", t.ID)
	case !t.Difficulty.Valid():
		return fmt.Errorf("term %q: unrecognized difficulty %q", t.ID, t.Difficulty)
	}
	return nil
}

// dedupeTags collapses duplicate tags, keeping first-occurrence order.
func dedupeTags(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// AllTerms returns every term in category-declaration order, then
// per-category order. The slice is shared and must not be mutated.
func (c *Catalog) AllTerms() []models.Term {
	return c.all
}

// TermsOf returns the terms of the named category, or an empty sequence
// when the name is unknown.
func (c *Catalog) TermsOf(name string) []models.Term {
	return c.byCategory[name]
}

// TermByID looks a term up by its id.
func (c *Catalog) TermByID(id string) (models.Term, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Categories returns the ordered category listing with resolved display
// names and term counts.
func (c *Catalog) Categories() []models.CategoryInfo {
	infos := make([]models.CategoryInfo, 0, len(c.categories))
	for _, cat := range c.categories {
		display, ok := categoryDisplayNames[cat.Name]
		if !ok {
			display = cat.Name
		}
		infos = append(infos, models.CategoryInfo{
			ID:          cat.Name,
			Name:        cat.Name,
			Count:       len(cat.Terms),
			DisplayName: display,
		})
	}
	return infos
}

// CategoryIDs returns the category ids in declaration order.
func (c *Catalog) CategoryIDs() []string {
	ids := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		ids = append(ids, cat.Name)
	}
	return ids
}

// TermCount returns the total number of terms across all categories.
func (c *Catalog) TermCount() int {
	return len(c.all)
}

// CategoryCount returns the number of categories.
func (c *Catalog) CategoryCount() int {
	return len(c.categories)
}

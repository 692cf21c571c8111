package glossary

import (
	"context"
	"strings"

	"github.com/jiten-dev/jiten/internal/interfaces"
	"github.com/jiten-dev/jiten/internal/models"
)

// DefaultLimit is the page size used when a listing does not specify one.
const DefaultLimit = 50

// ListTerms applies category, difficulty and search filters to the catalog
// and paginates the result. Filtering never reorders: pages preserve
// catalog declaration order.
func (s *Service) ListTerms(ctx context.Context, options interfaces.ListOptions) (*models.TermList, error) {
	if options.Limit < 0 {
		options.Limit = DefaultLimit
	}
	if options.Offset < 0 {
		options.Offset = 0
	}

	// A category selection replaces the working set entirely: a search
	// combined with a category only looks inside that category.
	working := s.catalog.AllTerms()
	if options.Category != "" && options.Category != "all" {
		working = s.catalog.TermsOf(options.Category)
	}

	query := strings.ToLower(strings.TrimSpace(options.Search))

	matched := make([]models.Term, 0, len(working))
	for i := range working {
		term := &working[i]
		if options.Difficulty != "" && options.Difficulty != "all" && string(term.Difficulty) != options.Difficulty {
			continue
		}
		if options.Search != "" && !matchesSearch(term, query) {
			continue
		}
		matched = append(matched, *term)
	}

	total := len(matched)
	start := options.Offset
	if start > total {
		start = total
	}
	end := start + options.Limit
	if end > total {
		end = total
	}

	s.logger.Debug().
		Str("category", options.Category).
		Str("difficulty", options.Difficulty).
		Str("search", options.Search).
		Int("total", total).
		Int("page", end-start).
		Msg("Term query")

	return &models.TermList{
		Terms:        matched[start:end],
		Total:        total,
		HasMore:      options.Offset+options.Limit < total,
		Categories:   s.catalog.CategoryIDs(),
		Difficulties: models.Difficulties(),
	}, nil
}

// matchesSearch reports whether the lowercased query hits the term's name,
// description or tags case-insensitively, or its localized label verbatim.
func matchesSearch(term *models.Term, query string) bool {
	if strings.Contains(strings.ToLower(term.Name), query) {
		return true
	}
	if strings.Contains(term.LocalizedLabel, query) {
		return true
	}
	if strings.Contains(strings.ToLower(term.Description), query) {
		return true
	}
	for _, tag := range term.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

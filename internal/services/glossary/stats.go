package glossary

import (
	"context"
	"time"

	"github.com/jiten-dev/jiten/internal/models"
)

// Stats recounts the catalog on every call. The catalog never changes while
// the process lives, so there is nothing to cache or invalidate; the
// timestamp is taken at call time.
func (s *Service) Stats(ctx context.Context) (*models.CatalogStats, error) {
	byDifficulty := make(map[models.Difficulty]int, len(models.Difficulties()))
	for _, d := range models.Difficulties() {
		byDifficulty[d] = 0
	}
	for _, term := range s.catalog.AllTerms() {
		byDifficulty[term.Difficulty]++
	}

	byCategory := make(map[string]int, s.catalog.CategoryCount())
	for _, info := range s.catalog.Categories() {
		byCategory[info.ID] = info.Count
	}

	return &models.CatalogStats{
		TotalTerms:   s.catalog.TermCount(),
		Categories:   s.catalog.CategoryCount(),
		ByDifficulty: byDifficulty,
		ByCategory:   byCategory,
		LastUpdated:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Package interfaces defines service contracts for jiten
package interfaces

import (
	"context"

	"github.com/jiten-dev/jiten/internal/models"
)

// GlossaryService serves read-only queries over the term catalog
type GlossaryService interface {
	// ListTerms returns a filtered, paginated term listing
	ListTerms(ctx context.Context, options ListOptions) (*models.TermList, error)

	// GetTerm retrieves a single term with its resolved related terms
	GetTerm(ctx context.Context, id string) (*models.TermDetail, error)

	// ListCategories returns every category with term counts
	ListCategories(ctx context.Context) ([]models.CategoryInfo, error)

	// Stats summarizes catalog composition at call time
	Stats(ctx context.Context) (*models.CatalogStats, error)

	// RandomTerms returns up to count distinct terms in shuffled order
	RandomTerms(ctx context.Context, count int) ([]models.Term, error)

	// RenderStatsChart renders the catalog difficulty breakdown as a PNG chart
	RenderStatsChart(ctx context.Context) ([]byte, error)
}

// ListOptions filters and paginates a term listing
type ListOptions struct {
	Category   string // category id; empty means all categories
	Difficulty string // exact difficulty match; empty means any
	Search     string // free-text needle; empty means no search filter
	Limit      int    // page size; negative falls back to the default
	Offset     int    // start position within the filtered set
}

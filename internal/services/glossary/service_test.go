package glossary

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiten-dev/jiten/internal/catalog"
	"github.com/jiten-dev/jiten/internal/common"
	"github.com/jiten-dev/jiten/internal/interfaces"
	"github.com/jiten-dev/jiten/internal/models"
)

// --- Fixtures ---

// testCatalog builds a small two-category catalog: three javascript terms
// (a1 closure, a2 hoisting, a3 spread operator) and two react terms
// (b1 JSX, b2 memoization).
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	defs := []models.Category{
		{
			Name: "javascript",
			Terms: []models.Term{
				{
					ID:             "a1",
					Name:           "closure",
					LocalizedLabel: "クロージャ",
					Description:    "スコープを保持する関数。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"scope"},
				},
				{
					ID:             "a2",
					Name:           "hoisting",
					LocalizedLabel: "巻き上げ",
					Description:    "宣言がスコープ先頭へ移動したように見える挙動。",
					Difficulty:     models.DifficultyIntermediate,
					Tags:           []string{"scope"},
				},
				{
					ID:               "a3",
					Name:             "spread operator",
					LocalizedLabel:   "スプレッド構文",
					Description:      "配列を展開する syntax。",
					Difficulty:       models.DifficultyBeginner,
					Tags:             []string{"syntax"},
					RelatedTermNames: []string{"closure", "ghost"},
				},
			},
		},
		{
			Name: "react",
			Terms: []models.Term{
				{
					ID:             "b1",
					Name:           "JSX",
					LocalizedLabel: "JSX記法",
					Description:    "UIを記述する拡張 syntax。",
					Difficulty:     models.DifficultyBeginner,
					Tags:           []string{"rendering"},
				},
				{
					ID:               "b2",
					Name:             "memoization",
					LocalizedLabel:   "メモ化",
					Description:      "再計算を省く最適化。",
					Difficulty:       models.DifficultyAdvanced,
					Tags:             []string{"performance"},
					RelatedTermNames: []string{"oist"},
				},
			},
		},
	}
	c, err := catalog.New(defs)
	require.NoError(t, err)
	return c
}

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(testCatalog(t), common.NewSilentLogger())
}

func listIDs(terms []models.Term) []string {
	ids := make([]string, len(terms))
	for i, term := range terms {
		ids[i] = term.ID
	}
	return ids
}

func relatedIDs(related []models.TermSummary) []string {
	ids := make([]string, len(related))
	for i, r := range related {
		ids[i] = r.ID
	}
	return ids
}

// --- ListTerms ---

func TestListTerms_NoFilters(t *testing.T) {
	svc := testService(t)
	list, err := svc.ListTerms(context.Background(), interfaces.ListOptions{Limit: DefaultLimit})
	require.NoError(t, err)

	assert.Equal(t, 5, list.Total)
	assert.False(t, list.HasMore)
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2"}, listIDs(list.Terms), "catalog order must be preserved")
	assert.Equal(t, []string{"javascript", "react"}, list.Categories)
	assert.Equal(t, models.Difficulties(), list.Difficulties)
}

func TestListTerms_CategoryFilter(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	t.Run("known_category_replaces_working_set", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Category: "react", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
		assert.Equal(t, []string{"b1", "b2"}, listIDs(list.Terms))
		assert.Equal(t, []string{"javascript", "react"}, list.Categories, "category listing is unaffected by filters")
	})

	t.Run("all_means_no_filter", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Category: "all", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 5, list.Total)
	})

	t.Run("unknown_category_yields_empty_set", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Category: "haskell", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
		assert.NotNil(t, list.Terms)
		assert.Empty(t, list.Terms)
		assert.False(t, list.HasMore)
	})

	t.Run("search_only_looks_inside_selected_category", func(t *testing.T) {
		// "scope" hits live in javascript; selecting react first must hide them.
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Category: "react", Search: "scope", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
	})
}

func TestListTerms_DifficultyFilter(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	list, err := svc.ListTerms(ctx, interfaces.ListOptions{Difficulty: "intermediate", Limit: DefaultLimit})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, listIDs(list.Terms))

	list, err = svc.ListTerms(ctx, interfaces.ListOptions{Difficulty: "all", Limit: DefaultLimit})
	require.NoError(t, err)
	assert.Equal(t, 5, list.Total)

	// Strict equality: an unrecognized value matches nothing.
	list, err = svc.ListTerms(ctx, interfaces.ListOptions{Difficulty: "expert", Limit: DefaultLimit})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestListTerms_Search(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	t.Run("matches_tags_and_description", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Search: "scope", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2"}, listIDs(list.Terms))
	})

	t.Run("case_insensitive_on_name_description_tags", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Search: "SYNTAX", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, []string{"a3", "b1"}, listIDs(list.Terms))
	})

	t.Run("matches_localized_label_verbatim", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Search: "記法", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, []string{"b1"}, listIDs(list.Terms))
	})

	t.Run("label_comparison_sees_the_lowercased_query", func(t *testing.T) {
		// The query is lowercased before the verbatim label comparison, so
		// a label containing uppercase latin is unreachable through it.
		// b1 still cannot match: name "JSX" does not contain "jsx記法".
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Search: "JSX記法", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
	})

	t.Run("whitespace_only_search_matches_everything", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Search: "   ", Limit: DefaultLimit})
		require.NoError(t, err)
		assert.Equal(t, 5, list.Total)
	})

	t.Run("combines_with_category_and_difficulty", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{
			Category:   "javascript",
			Difficulty: "intermediate",
			Search:     "closure",
			Limit:      DefaultLimit,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a1"}, listIDs(list.Terms))
	})
}

func TestListTerms_Pagination(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	t.Run("first_page", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2"}, listIDs(list.Terms))
		assert.Equal(t, 5, list.Total)
		assert.True(t, list.HasMore)
	})

	t.Run("last_partial_page", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"b2"}, listIDs(list.Terms))
		assert.False(t, list.HasMore)
	})

	t.Run("offset_past_end", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Limit: 2, Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, list.Terms)
		assert.Equal(t, 5, list.Total)
		assert.False(t, list.HasMore)
	})

	t.Run("zero_limit_returns_empty_page", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Limit: 0})
		require.NoError(t, err)
		assert.Empty(t, list.Terms)
		assert.Equal(t, 5, list.Total)
		assert.True(t, list.HasMore)
	})

	t.Run("negative_values_fall_back_to_defaults", func(t *testing.T) {
		list, err := svc.ListTerms(ctx, interfaces.ListOptions{Limit: -1, Offset: -3})
		require.NoError(t, err)
		assert.Equal(t, 5, len(list.Terms), "negative limit should become the default page size")
		assert.False(t, list.HasMore)
	})
}

// --- GetTerm ---

func TestGetTerm_RelatedByTag(t *testing.T) {
	svc := testService(t)
	detail, err := svc.GetTerm(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, "closure", detail.Name)
	assert.Equal(t, "クロージャ", detail.LocalizedLabel)
	assert.Equal(t, []string{"a2"}, relatedIDs(detail.RelatedTerms), "a2 shares the scope tag; b1/b2 share nothing")
}

func TestGetTerm_RelatedByNameHint(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	// "oist" is a partial hint: substring of "hoisting", no tag overlap.
	detail, err := svc.GetTerm(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, relatedIDs(detail.RelatedTerms))

	// "closure" resolves; "ghost" matches no name and is silently ignored.
	detail, err = svc.GetTerm(ctx, "a3")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, relatedIDs(detail.RelatedTerms))
}

func TestGetTerm_RelatedSummaryShape(t *testing.T) {
	svc := testService(t)
	detail, err := svc.GetTerm(context.Background(), "b2")
	require.NoError(t, err)

	require.Len(t, detail.RelatedTerms, 1)
	summary := detail.RelatedTerms[0]
	assert.Equal(t, "a2", summary.ID)
	assert.Equal(t, "hoisting", summary.Name)
	assert.Equal(t, "巻き上げ", summary.LocalizedLabel)
}

func TestGetTerm_RelatedCap(t *testing.T) {
	// Seven terms sharing one tag: the detail must list only the first
	// five others, in catalog order.
	terms := make([]models.Term, 7)
	for i := range terms {
		terms[i] = models.Term{
			ID:             string(rune('a' + i)),
			Name:           "term " + string(rune('a'+i)),
			LocalizedLabel: "用語",
			Description:    "説明",
			Difficulty:     models.DifficultyBeginner,
			Tags:           []string{"shared"},
		}
	}
	c, err := catalog.New([]models.Category{{Name: "web", Terms: terms}})
	require.NoError(t, err)
	svc := NewService(c, common.NewSilentLogger())

	detail, err := svc.GetTerm(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, relatedIDs(detail.RelatedTerms))
}

func TestGetTerm_NotFound(t *testing.T) {
	svc := testService(t)
	_, err := svc.GetTerm(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTermNotFound)
}

// --- ListCategories ---

func TestListCategories(t *testing.T) {
	svc := testService(t)
	infos, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, infos, 2)
	assert.Equal(t, "javascript", infos[0].ID)
	assert.Equal(t, 3, infos[0].Count)
	assert.Equal(t, "JavaScript", infos[0].DisplayName)
	assert.Equal(t, "react", infos[1].ID)
	assert.Equal(t, 2, infos[1].Count)
}

// --- Stats ---

func TestStats(t *testing.T) {
	svc := testService(t)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalTerms)
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, map[models.Difficulty]int{
		models.DifficultyBeginner:     2,
		models.DifficultyIntermediate: 2,
		models.DifficultyAdvanced:     1,
	}, stats.ByDifficulty)
	assert.Equal(t, map[string]int{"javascript": 3, "react": 2}, stats.ByCategory)

	_, err = time.Parse(time.RFC3339, stats.LastUpdated)
	assert.NoError(t, err, "lastUpdated should be RFC 3339")
}

func TestStats_Idempotent(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	second, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.TotalTerms, second.TotalTerms)
	assert.Equal(t, first.ByDifficulty, second.ByDifficulty)
	assert.Equal(t, first.ByCategory, second.ByCategory)
}

// --- RandomTerms ---

func TestRandomTerms(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	t.Run("zero_count_is_empty", func(t *testing.T) {
		terms, err := svc.RandomTerms(ctx, 0)
		require.NoError(t, err)
		assert.NotNil(t, terms)
		assert.Empty(t, terms)
	})

	t.Run("negative_count_is_empty", func(t *testing.T) {
		terms, err := svc.RandomTerms(ctx, -2)
		require.NoError(t, err)
		assert.Empty(t, terms)
	})

	t.Run("count_within_catalog", func(t *testing.T) {
		terms, err := svc.RandomTerms(ctx, 3)
		require.NoError(t, err)
		require.Len(t, terms, 3)

		seen := make(map[string]bool)
		for _, term := range terms {
			assert.False(t, seen[term.ID], "no duplicate ids in one draw")
			seen[term.ID] = true
		}
	})

	t.Run("count_beyond_catalog_returns_everything", func(t *testing.T) {
		terms, err := svc.RandomTerms(ctx, 99)
		require.NoError(t, err)
		require.Len(t, terms, 5)

		seen := make(map[string]bool)
		for _, term := range terms {
			seen[term.ID] = true
		}
		for _, id := range []string{"a1", "a2", "a3", "b1", "b2"} {
			assert.True(t, seen[id], "term %s missing from full shuffle", id)
		}
	})
}

// --- RenderStatsChart ---

func TestRenderStatsChart(t *testing.T) {
	svc := testService(t)
	png, err := svc.RenderStatsChart(context.Background())
	require.NoError(t, err)

	signature := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	require.Greater(t, len(png), len(signature))
	assert.True(t, bytes.HasPrefix(png, signature), "output should be a PNG")
}

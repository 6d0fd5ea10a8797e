package query

import (
	"context"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

// SearchCocktailsQuery is the validated search filter.
type SearchCocktailsQuery struct {
	Query       string
	Limit       int
	Offset      int
	IsAlcoholic *bool
	CategoryID  *uint
	TagID       *uint
	GlassTypeID *uint
}

// SearchCocktailsHandler runs the filtered catalog search.
type SearchCocktailsHandler struct {
	repo domain.CocktailRepository
}

func NewSearchCocktailsHandler(repo domain.CocktailRepository) *SearchCocktailsHandler {
	return &SearchCocktailsHandler{repo: repo}
}

func (h *SearchCocktailsHandler) Handle(ctx context.Context, q SearchCocktailsQuery) ([]domain.Cocktail, int64, error) {
	return h.repo.Search(ctx, domain.SearchParams{
		Query:       q.Query,
		Limit:       q.Limit,
		Offset:      q.Offset,
		IsAlcoholic: q.IsAlcoholic,
		CategoryID:  q.CategoryID,
		TagID:       q.TagID,
		GlassTypeID: q.GlassTypeID,
	})
}

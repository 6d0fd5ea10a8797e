package query

import (
	"context"
	"fmt"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

// ListCocktailsQuery holds pagination and expansion for the catalog listing.
type ListCocktailsQuery struct {
	Skip   int
	Take   int
	Expand domain.Expansion
}

// ListCocktailsHandler returns one catalog page with the total count.
type ListCocktailsHandler struct {
	repo domain.CocktailRepository
}

func NewListCocktailsHandler(repo domain.CocktailRepository) *ListCocktailsHandler {
	return &ListCocktailsHandler{repo: repo}
}

func (h *ListCocktailsHandler) Handle(ctx context.Context, q ListCocktailsQuery) ([]domain.Cocktail, int64, error) {
	cocktails, err := h.repo.FindAll(ctx, domain.ListParams{
		Skip:   q.Skip,
		Take:   q.Take,
		Expand: q.Expand,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cocktails: %w", err)
	}

	total, err := h.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cocktails: %w", err)
	}

	return cocktails, total, nil
}

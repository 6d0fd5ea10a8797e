package query

import (
	"context"
	"fmt"

	"github.com/barkeep/cocktail-api/internal/pantry/domain"
)

// SearchPantryQuery filters a user's pantry by ingredient name.
type SearchPantryQuery struct {
	UserID string
	Query  string
	Limit  int
	Offset int
}

type SearchPantryHandler struct {
	repo domain.PantryRepository
}

func NewSearchPantryHandler(repo domain.PantryRepository) *SearchPantryHandler {
	return &SearchPantryHandler{repo: repo}
}

func (h *SearchPantryHandler) Handle(ctx context.Context, q SearchPantryQuery) ([]domain.PantryItem, int64, error) {
	items, total, err := h.repo.Search(ctx, q.UserID, domain.SearchParams{
		Query:  q.Query,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search pantry: %w", err)
	}
	return items, total, nil
}

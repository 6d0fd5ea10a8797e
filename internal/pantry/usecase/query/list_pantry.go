package query

import (
	"context"
	"fmt"

	"github.com/barkeep/cocktail-api/internal/pantry/domain"
)

// ListPantryQuery pages through a user's pantry.
type ListPantryQuery struct {
	UserID string
	Limit  int
	Offset int
}

type ListPantryHandler struct {
	repo domain.PantryRepository
}

func NewListPantryHandler(repo domain.PantryRepository) *ListPantryHandler {
	return &ListPantryHandler{repo: repo}
}

func (h *ListPantryHandler) Handle(ctx context.Context, q ListPantryQuery) ([]domain.PantryItem, int64, error) {
	items, err := h.repo.FindByUser(ctx, q.UserID, domain.ListParams{
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pantry: %w", err)
	}

	total, err := h.repo.CountByUser(ctx, q.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pantry: %w", err)
	}

	return items, total, nil
}

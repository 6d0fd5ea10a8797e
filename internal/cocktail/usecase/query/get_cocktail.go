package query

import (
	"context"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

// GetCocktailQuery identifies the cocktail to load.
type GetCocktailQuery struct {
	ID uint
}

// GetCocktailHandler loads a single cocktail with all relations.
type GetCocktailHandler struct {
	repo domain.CocktailRepository
}

func NewGetCocktailHandler(repo domain.CocktailRepository) *GetCocktailHandler {
	return &GetCocktailHandler{repo: repo}
}

func (h *GetCocktailHandler) Handle(ctx context.Context, q GetCocktailQuery) (*domain.Cocktail, error) {
	return h.repo.FindByID(ctx, q.ID)
}

package command

import (
	"context"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

// DeleteCocktailCommand identifies the cocktail to remove.
type DeleteCocktailCommand struct {
	ID uint
}

// DeleteCocktailHandler handles the cascading delete.
type DeleteCocktailHandler struct {
	repo domain.CocktailRepository
}

func NewDeleteCocktailHandler(repo domain.CocktailRepository) *DeleteCocktailHandler {
	return &DeleteCocktailHandler{repo: repo}
}

// Handle removes the cocktail and all dependent rows as one atomic unit.
func (h *DeleteCocktailHandler) Handle(ctx context.Context, cmd DeleteCocktailCommand) error {
	return h.repo.Delete(ctx, cmd.ID)
}

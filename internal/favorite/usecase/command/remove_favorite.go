package command

import (
	"context"

	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

// RemoveFavoriteCommand removes a user's bookmark of a cocktail.
type RemoveFavoriteCommand struct {
	UserID     string
	CocktailID uint
}

type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle deletes the pair. domain.ErrNotFound when it does not exist.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	favorite, err := h.repo.FindByPair(ctx, cmd.UserID, cmd.CocktailID)
	if err != nil {
		return err
	}
	return h.repo.Delete(ctx, favorite.ID)
}

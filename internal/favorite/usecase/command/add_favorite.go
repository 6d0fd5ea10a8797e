package command

import (
	"context"

	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

// AddFavoriteCommand bookmarks a cocktail for a user.
type AddFavoriteCommand struct {
	UserID     string
	CocktailID uint
}

type AddFavoriteHandler struct {
	repo domain.FavoriteRepository
}

func NewAddFavoriteHandler(repo domain.FavoriteRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle inserts the pair. domain.ErrDuplicate when it already exists.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		UserID:     cmd.UserID,
		CocktailID: cmd.CocktailID,
	}
	if err := h.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

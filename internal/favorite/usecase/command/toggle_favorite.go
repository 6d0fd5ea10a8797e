package command

import (
	"context"
	"errors"

	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

// Toggle outcomes reported to the caller.
const (
	StatusAdded   = "added"
	StatusRemoved = "removed"
)

// ToggleFavoriteCommand flips the bookmark state of a (user, cocktail) pair.
type ToggleFavoriteCommand struct {
	UserID     string
	CocktailID uint
}

type ToggleFavoriteHandler struct {
	repo domain.FavoriteRepository
}

func NewToggleFavoriteHandler(repo domain.FavoriteRepository) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{repo: repo}
}

// Handle reads the current state and flips it. The read and the write are
// not one atomic step: concurrent togglers of the same pair race, and the
// loser of a duplicate insert surfaces domain.ErrDuplicate.
func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (string, error) {
	existing, err := h.repo.FindByPair(ctx, cmd.UserID, cmd.CocktailID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	if existing != nil {
		if err := h.repo.Delete(ctx, existing.ID); err != nil {
			return "", err
		}
		return StatusRemoved, nil
	}

	if err := h.repo.Create(ctx, &domain.Favorite{
		UserID:     cmd.UserID,
		CocktailID: cmd.CocktailID,
	}); err != nil {
		return "", err
	}
	return StatusAdded, nil
}

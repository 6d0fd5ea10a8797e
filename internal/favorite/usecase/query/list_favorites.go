package query

import (
	"context"
	"fmt"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

// ListFavoritesQuery pages through a user's favorites.
type ListFavoritesQuery struct {
	UserID string
	Skip   int
	Take   int
	Expand cocktail.Expansion
}

type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Favorite, int64, error) {
	favorites, err := h.repo.FindByUser(ctx, q.UserID, domain.ListParams{
		Skip:   q.Skip,
		Take:   q.Take,
		Expand: q.Expand,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list favorites: %w", err)
	}

	total, err := h.repo.CountByUser(ctx, q.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	return favorites, total, nil
}

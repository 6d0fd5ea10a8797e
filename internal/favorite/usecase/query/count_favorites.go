package query

import (
	"context"

	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

// CountFavoritesQuery counts favorites of one cocktail.
type CountFavoritesQuery struct {
	CocktailID uint
}

type CountFavoritesHandler struct {
	repo domain.FavoriteRepository
}

func NewCountFavoritesHandler(repo domain.FavoriteRepository) *CountFavoritesHandler {
	return &CountFavoritesHandler{repo: repo}
}

func (h *CountFavoritesHandler) Handle(ctx context.Context, q CountFavoritesQuery) (int64, error) {
	return h.repo.CountByCocktail(ctx, q.CocktailID)
}

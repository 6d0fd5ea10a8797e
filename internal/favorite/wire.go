//go:build wireinject
// +build wireinject

package favorite

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/barkeep/cocktail-api/internal/favorite/delivery/http"
	"github.com/barkeep/cocktail-api/internal/favorite/domain"
	"github.com/barkeep/cocktail-api/internal/favorite/repository"
	"github.com/barkeep/cocktail-api/internal/favorite/usecase/command"
	"github.com/barkeep/cocktail-api/internal/favorite/usecase/query"
	"github.com/barkeep/cocktail-api/kafka"
)

// ProvideFavoriteRepository provides the favorite repository.
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewGormFavoriteRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideFavoriteRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewAddFavoriteHandler,
	command.NewRemoveFavoriteHandler,
	command.NewToggleFavoriteHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListFavoritesHandler,
	query.NewCountFavoritesHandler,
)

// InitializeHTTPHandler builds the favorite HTTP handler with all
// dependencies.
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.FavoriteHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewFavoriteHandlerWithDI,
	)
	return nil, nil
}

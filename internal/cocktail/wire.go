//go:build wireinject
// +build wireinject

package cocktail

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/barkeep/cocktail-api/internal/cocktail/delivery/http"
	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/cocktail/repository"
	"github.com/barkeep/cocktail-api/internal/cocktail/usecase/command"
	"github.com/barkeep/cocktail-api/internal/cocktail/usecase/query"
	"github.com/barkeep/cocktail-api/kafka"
)

// ProvideCocktailRepository provides the traced cocktail repository.
func ProvideCocktailRepository(db *gorm.DB) domain.CocktailRepository {
	return repository.NewGormCocktailRepositoryWithTracing(db)
}

var RepositorySet = wire.NewSet(
	ProvideCocktailRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateCocktailHandler,
	command.NewDeleteCocktailHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetCocktailHandler,
	query.NewListCocktailsHandler,
	query.NewSearchCocktailsHandler,
)

// InitializeHTTPHandler builds the cocktail HTTP handler with all
// dependencies.
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.CocktailHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewCocktailHandlerWithDI,
	)
	return nil, nil
}

//go:build wireinject
// +build wireinject

package pantry

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/barkeep/cocktail-api/internal/pantry/delivery/http"
	"github.com/barkeep/cocktail-api/internal/pantry/domain"
	"github.com/barkeep/cocktail-api/internal/pantry/repository"
	"github.com/barkeep/cocktail-api/internal/pantry/usecase/command"
	"github.com/barkeep/cocktail-api/internal/pantry/usecase/query"
)

// ProvidePantryRepository provides the pantry repository.
func ProvidePantryRepository(db *gorm.DB) domain.PantryRepository {
	return repository.NewGormPantryRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvidePantryRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewAddPantryItemHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListPantryHandler,
	query.NewSearchPantryHandler,
)

// InitializeHTTPHandler builds the pantry HTTP handler with all
// dependencies.
func InitializeHTTPHandler(db *gorm.DB) (*http.PantryHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewPantryHandlerWithDI,
	)
	return nil, nil
}

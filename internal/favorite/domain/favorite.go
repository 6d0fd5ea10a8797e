package domain

import (
	"context"
	"errors"
	"time"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

var (
	ErrNotFound         = errors.New("favorite not found")
	ErrDuplicate        = errors.New("already favorited")
	ErrCocktailNotFound = errors.New("cocktail not found")
)

// Favorite is a user's bookmark of a cocktail. At most one row exists per
// (user, cocktail) pair; the unique index is the source of truth for that.
type Favorite struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uidx_favorites_user_cocktail"`
	CocktailID uint   `json:"cocktail_id" gorm:"not null;uniqueIndex:uidx_favorites_user_cocktail"`

	Cocktail *cocktail.Cocktail `json:"cocktail,omitempty" gorm:"foreignKey:CocktailID"`

	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// ListParams are pagination and cocktail-expansion options for a user's
// favorites listing.
type ListParams struct {
	Skip   int
	Take   int
	Expand cocktail.Expansion
}

// FavoriteRepository defines the contract for favorite data access.
type FavoriteRepository interface {
	// Create inserts the pair; ErrDuplicate when it already exists.
	Create(ctx context.Context, favorite *Favorite) error
	FindByPair(ctx context.Context, userID string, cocktailID uint) (*Favorite, error)
	Delete(ctx context.Context, id uint) error
	// FindByUser returns one page of a user's favorites, newest first, each
	// with its cocktail loaded at the requested expansion.
	FindByUser(ctx context.Context, userID string, params ListParams) ([]Favorite, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByCocktail(ctx context.Context, cocktailID uint) (int64, error)
}

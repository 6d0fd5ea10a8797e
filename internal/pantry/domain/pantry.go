package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

var (
	ErrNotFound     = errors.New("pantry item not found")
	ErrUnitNotFound = errors.New("unitId not found")
)

// PantryItem is a quantity of an ingredient a user currently possesses.
// (user, case-insensitive ingredient name, unit) is the natural key: adding
// a matching item merges amounts instead of inserting a second row.
type PantryItem struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	UserID         string              `json:"user_id" gorm:"type:uuid;not null;index"`
	IngredientName string              `json:"ingredient_name" gorm:"not null"`
	Amount         decimal.NullDecimal `json:"amount" gorm:"type:decimal(10,2)"`
	UnitID         *uint               `json:"unit_id"`
	ExpiresAt      *time.Time          `json:"expires_at"`

	Unit *cocktail.Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID"`

	CreatedAt time.Time `json:"created_at"`
}

func (PantryItem) TableName() string {
	return "pantry_items"
}

// ListParams are pagination options for a user's pantry listing.
type ListParams struct {
	Limit  int
	Offset int
}

// SearchParams filter a user's pantry by ingredient-name contains.
type SearchParams struct {
	Query  string
	Limit  int
	Offset int
}

// PantryRepository defines the contract for pantry data access.
type PantryRepository interface {
	// FindByUser returns one page of a user's pantry, newest first.
	FindByUser(ctx context.Context, userID string, params ListParams) ([]PantryItem, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// Search filters by case-insensitive ingredient-name contains, ordered by
	// name then id, and reports the total match count.
	Search(ctx context.Context, userID string, params SearchParams) ([]PantryItem, int64, error)
	// FindMatch locates the row with the same user, case-insensitive
	// ingredient name, and unit (nil matches rows with no unit).
	// ErrNotFound when no row matches.
	FindMatch(ctx context.Context, userID, ingredientName string, unitID *uint) (*PantryItem, error)
	Create(ctx context.Context, item *PantryItem) error
	Update(ctx context.Context, item *PantryItem) error
	// FindUnit looks up a measurement unit. ErrUnitNotFound when absent.
	FindUnit(ctx context.Context, id uint) (*cocktail.Unit, error)
}

package command

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/pantry/domain"
)

// AddPantryItemCommand adds an ingredient quantity to a user's pantry,
// merging into an existing row when the natural key matches.
type AddPantryItemCommand struct {
	UserID         string
	IngredientName string
	Amount         decimal.NullDecimal
	UnitID         *uint
	ExpiresAt      *time.Time
}

type AddPantryItemHandler struct {
	repo domain.PantryRepository
}

func NewAddPantryItemHandler(repo domain.PantryRepository) *AddPantryItemHandler {
	return &AddPantryItemHandler{repo: repo}
}

// Handle verifies the unit, then merges or creates. On a merge the amounts
// add and the stored expiry is only overwritten when the command carries one.
func (h *AddPantryItemHandler) Handle(ctx context.Context, cmd AddPantryItemCommand) (*domain.PantryItem, error) {
	var unit *cocktail.Unit
	if cmd.UnitID != nil {
		u, err := h.repo.FindUnit(ctx, *cmd.UnitID)
		if err != nil {
			return nil, err
		}
		unit = u
	}

	existing, err := h.repo.FindMatch(ctx, cmd.UserID, cmd.IngredientName, cmd.UnitID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if cmd.Amount.Valid && existing.Amount.Valid {
			existing.Amount.Decimal = existing.Amount.Decimal.Add(cmd.Amount.Decimal)
		}
		if cmd.ExpiresAt != nil {
			existing.ExpiresAt = cmd.ExpiresAt
		}
		if err := h.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &domain.PantryItem{
		UserID:         cmd.UserID,
		IngredientName: cmd.IngredientName,
		Amount:         cmd.Amount,
		UnitID:         cmd.UnitID,
		ExpiresAt:      cmd.ExpiresAt,
	}
	if err := h.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Unit = unit
	return item, nil
}

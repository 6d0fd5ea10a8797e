package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

// IngredientInput is one ingredient of a cocktail being created.
type IngredientInput struct {
	Name   string
	Amount decimal.NullDecimal
	UnitID *uint
}

// InstructionInput is one preparation step of a cocktail being created.
type InstructionInput struct {
	StepNumber *int
	Text       string
}

// CreateCocktailCommand carries everything needed for the composite write:
// scalar fields, owned children, and lookup ids to connect.
type CreateCocktailCommand struct {
	Name               string
	ImageURL           *string
	VideoURL           *string
	Description        *string
	GlassTypeID        *uint
	Method             *string
	Garnish            *string
	Difficulty         *string
	PrepTime           *int
	NutritionInfo      *string
	IsAlcoholic        *bool
	Servings           *int
	AlcoholPercentage  *float64
	CaloriesPerServing *float64

	Ingredients  []IngredientInput
	Instructions []InstructionInput

	AllergenIDs []uint
	CategoryIDs []uint
	TagIDs      []uint
}

// CreateCocktailHandler handles cocktail creation.
type CreateCocktailHandler struct {
	repo domain.CocktailRepository
}

func NewCreateCocktailHandler(repo domain.CocktailRepository) *CreateCocktailHandler {
	return &CreateCocktailHandler{repo: repo}
}

// Handle executes the composite create and returns the fully expanded entity.
func (h *CreateCocktailHandler) Handle(ctx context.Context, cmd CreateCocktailCommand) (*domain.Cocktail, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	cocktail := &domain.Cocktail{
		Name:               cmd.Name,
		ImageURL:           cmd.ImageURL,
		VideoURL:           cmd.VideoURL,
		Description:        cmd.Description,
		GlassTypeID:        cmd.GlassTypeID,
		Method:             cmd.Method,
		Garnish:            cmd.Garnish,
		Difficulty:         cmd.Difficulty,
		PrepTime:           cmd.PrepTime,
		NutritionInfo:      cmd.NutritionInfo,
		IsAlcoholic:        cmd.IsAlcoholic,
		Servings:           cmd.Servings,
		AlcoholPercentage:  cmd.AlcoholPercentage,
		CaloriesPerServing: cmd.CaloriesPerServing,
	}

	for _, in := range cmd.Ingredients {
		cocktail.Ingredients = append(cocktail.Ingredients, domain.Ingredient{
			Name:   in.Name,
			Amount: in.Amount,
			UnitID: in.UnitID,
		})
	}
	for _, in := range cmd.Instructions {
		cocktail.Instructions = append(cocktail.Instructions, domain.Instruction{
			StepNumber: in.StepNumber,
			Text:       in.Text,
		})
	}
	for _, id := range cmd.AllergenIDs {
		cocktail.Allergens = append(cocktail.Allergens, domain.Allergen{ID: id})
	}
	for _, id := range cmd.CategoryIDs {
		cocktail.Categories = append(cocktail.Categories, domain.Category{ID: id})
	}
	for _, id := range cmd.TagIDs {
		cocktail.Tags = append(cocktail.Tags, domain.Tag{ID: id})
	}

	if err := h.repo.Create(ctx, cocktail); err != nil {
		return nil, err
	}

	// Re-read so the response carries lookup names, not just connected ids.
	return h.repo.FindByID(ctx, cocktail.ID)
}

package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors surfaced by repositories so delivery can map them to
// status codes without inspecting driver errors.
var (
	ErrNotFound = errors.New("cocktail not found")
)

// Expansion controls how many relations a read loads.
type Expansion string

const (
	ExpandBasic Expansion = "basic"
	ExpandFull  Expansion = "full"
)

// Cocktail is the primary recipe entity. Lookup relations (glass type,
// allergens, categories, tags) are connected by id, never created through
// cocktail writes.
type Cocktail struct {
	ID                 uint     `json:"id" gorm:"primaryKey"`
	Name               string   `json:"name" gorm:"not null;index"`
	ImageURL           *string  `json:"image_url"`
	VideoURL           *string  `json:"video_url"`
	Description        *string  `json:"description"`
	GlassTypeID        *uint    `json:"glass_type_id"`
	Method             *string  `json:"method"`
	Garnish            *string  `json:"garnish"`
	Difficulty         *string  `json:"difficulty"`
	PrepTime           *int     `json:"prep_time"`
	NutritionInfo      *string  `json:"nutrition_info"`
	IsAlcoholic        *bool    `json:"is_alcoholic"`
	Servings           *int     `json:"servings"`
	AlcoholPercentage  *float64 `json:"alcohol_percentage"`
	CaloriesPerServing *float64 `json:"calories_per_serving"`

	Glass        *GlassType    `json:"glass_type,omitempty" gorm:"foreignKey:GlassTypeID"`
	Ingredients  []Ingredient  `json:"ingredients,omitempty"`
	Instructions []Instruction `json:"instructions,omitempty"`
	Allergens    []Allergen    `json:"allergens,omitempty" gorm:"many2many:cocktail_allergens;"`
	Categories   []Category    `json:"categories,omitempty" gorm:"many2many:cocktail_categories;"`
	Tags         []Tag         `json:"tags,omitempty" gorm:"many2many:cocktail_tags;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cocktail) TableName() string {
	return "cocktails"
}

// Ingredient is owned by exactly one cocktail. Amount keeps decimal
// precision and serializes as a string, never a binary float.
type Ingredient struct {
	ID         uint                `json:"id" gorm:"primaryKey"`
	CocktailID uint                `json:"cocktail_id" gorm:"not null;index"`
	Name       string              `json:"name" gorm:"not null"`
	Amount     decimal.NullDecimal `json:"amount" gorm:"type:decimal(10,2)"`
	UnitID     *uint               `json:"unit_id"`
	Unit       *Unit               `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// Instruction is a single preparation step. The step number may be absent;
// ordering can be assigned by the caller.
type Instruction struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	CocktailID uint   `json:"cocktail_id" gorm:"not null;index"`
	StepNumber *int   `json:"step_number"`
	Text       string `json:"text" gorm:"not null"`
}

func (Instruction) TableName() string {
	return "instructions"
}

// Lookup entities referenced by cocktails.

type GlassType struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	ImageURL *string `json:"image_url"`
}

func (GlassType) TableName() string { return "glass_types" }

type Allergen struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Allergen) TableName() string { return "allergens" }

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Category) TableName() string { return "categories" }

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Tag) TableName() string { return "tags" }

type Unit struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Unit) TableName() string { return "units" }

// Comment is user feedback on a cocktail. It has no routes of its own but
// participates in the cascade delete.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CocktailID uint      `json:"cocktail_id" gorm:"not null;index"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null"`
	Body       string    `json:"body" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Comment) TableName() string { return "comments" }

// ListParams are pagination and expansion options for catalog listings.
type ListParams struct {
	Skip   int
	Take   int
	Expand Expansion
}

// SearchParams describe the cocktail search filter: a case-insensitive
// contains match on name, description, or any ingredient name, AND-ed with
// optional exact filters.
type SearchParams struct {
	Query       string
	Limit       int
	Offset      int
	IsAlcoholic *bool
	CategoryID  *uint
	TagID       *uint
	GlassTypeID *uint
}

// CocktailRepository defines the contract for cocktail data access.
type CocktailRepository interface {
	// Create writes the cocktail row, its ingredients and instructions, and
	// the allergen/category/tag join rows in a single composite write.
	Create(ctx context.Context, cocktail *Cocktail) error
	// FindByID loads a cocktail with all relations expanded.
	FindByID(ctx context.Context, id uint) (*Cocktail, error)
	FindAll(ctx context.Context, params ListParams) ([]Cocktail, error)
	Count(ctx context.Context) (int64, error)
	// Search returns matching cocktails ordered by name ascending, along
	// with the total match count.
	Search(ctx context.Context, params SearchParams) ([]Cocktail, int64, error)
	// Delete removes the cocktail and every dependent row (ingredients,
	// instructions, join rows, comments, favorites) atomically.
	Delete(ctx context.Context, id uint) error
}

package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
	favoriteDomain "github.com/barkeep/cocktail-api/internal/favorite/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := NewGormCocktailRepository(db)
	require.NoError(t, repo.AutoMigrate())
	// Cascade delete touches the favorites table too.
	require.NoError(t, db.AutoMigrate(&favoriteDomain.Favorite{}))

	return db
}

func seedLookups(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&domain.GlassType{ID: 1, Name: "Highball"}).Error)
	require.NoError(t, db.Create(&domain.Unit{ID: 1, Name: "ml"}).Error)
	require.NoError(t, db.Create(&domain.Allergen{ID: 1, Name: "Citrus"}).Error)
	require.NoError(t, db.Create(&domain.Category{ID: 1, Name: "Classic"}).Error)
	require.NoError(t, db.Create(&domain.Tag{ID: 1, Name: "Summer"}).Error)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func uintPtr(u uint) *uint    { return &u }

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestCreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewGormCocktailRepository(db)
	ctx := context.Background()

	one := 1
	cocktail := &domain.Cocktail{
		Name:        "Mojito",
		Description: strPtr("A Cuban classic"),
		GlassTypeID: uintPtr(1),
		IsAlcoholic: boolPtr(true),
		Ingredients: []domain.Ingredient{
			{Name: "White rum", Amount: amount("50"), UnitID: uintPtr(1)},
			{Name: "Mint"},
		},
		Instructions: []domain.Instruction{
			{StepNumber: &one, Text: "Muddle the mint"},
		},
		Allergens:  []domain.Allergen{{ID: 1}},
		Categories: []domain.Category{{ID: 1}},
		Tags:       []domain.Tag{{ID: 1}},
	}
	require.NoError(t, repo.Create(ctx, cocktail))
	require.NotZero(t, cocktail.ID)

	got, err := repo.FindByID(ctx, cocktail.ID)
	require.NoError(t, err)

	assert.Equal(t, "Mojito", got.Name)
	assert.Equal(t, "A Cuban classic", *got.Description)
	require.NotNil(t, got.Glass)
	assert.Equal(t, "Highball", got.Glass.Name)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "50", got.Ingredients[0].Amount.Decimal.String())
	require.NotNil(t, got.Ingredients[0].Unit)
	assert.Equal(t, "ml", got.Ingredients[0].Unit.Name)
	require.Len(t, got.Instructions, 1)
	assert.Equal(t, "Muddle the mint", got.Instructions[0].Text)
	require.Len(t, got.Allergens, 1)
	assert.Equal(t, "Citrus", got.Allergens[0].Name)
	require.Len(t, got.Categories, 1)
	require.Len(t, got.Tags, 1)
}

func TestCreateConnectsLookupsWithoutCreatingThem(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewGormCocktailRepository(db)

	cocktail := &domain.Cocktail{
		Name: "Daiquiri",
		Tags: []domain.Tag{{ID: 1, Name: "Renamed"}},
	}
	require.NoError(t, repo.Create(context.Background(), cocktail))

	var tag domain.Tag
	require.NoError(t, db.First(&tag, 1).Error)
	assert.Equal(t, "Summer", tag.Name)

	var count int64
	require.NoError(t, db.Model(&domain.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCocktailRepository(db)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCocktailRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		require.NoError(t, repo.Create(ctx, &domain.Cocktail{Name: name}))
	}

	got, err := repo.FindAll(ctx, domain.ListParams{Take: 2, Expand: domain.ExpandBasic})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Charlie", got[0].Name)
	assert.Equal(t, "Bravo", got[1].Name)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestSearchMatchesNameDescriptionAndIngredient(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewGormCocktailRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Cocktail{Name: "Vodka Martini"}))
	require.NoError(t, repo.Create(ctx, &domain.Cocktail{
		Name:        "Screwdriver",
		Description: strPtr("VODKA and orange juice"),
	}))
	require.NoError(t, repo.Create(ctx, &domain.Cocktail{
		Name:        "Bloody Mary",
		Ingredients: []domain.Ingredient{{Name: "Vodka", Amount: amount("45"), UnitID: uintPtr(1)}},
	}))
	require.NoError(t, repo.Create(ctx, &domain.Cocktail{Name: "Virgin Colada"}))

	got, total, err := repo.Search(ctx, domain.SearchParams{Query: "vodka", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 3)

	// Ordered by name ascending.
	assert.Equal(t, "Bloody Mary", got[0].Name)
	assert.Equal(t, "Screwdriver", got[1].Name)
	assert.Equal(t, "Vodka Martini", got[2].Name)
}

func TestSearchMatchesLikeMetacharactersLiterally(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewGormCocktailRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Cocktail{Name: "100% Agave Sour"}))
	require.NoError(t, repo.Create(ctx, &domain.Cocktail{Name: "Mai_Tai"}))
	require.NoError(t, repo.Create(ctx, &domain.Cocktail{Name: "Margarita"}))

	got, total, err := repo.Search(ctx, domain.SearchParams{Query: "%", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "100% Agave Sour", got[0].Name)

	got, total, err = repo.Search(ctx, domain.SearchParams{Query: "_", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Mai_Tai", got[0].Name)
}

func TestSearchAppliesExactFilters(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewGormCocktailRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Cocktail{
		Name:        "Gin Fizz",
		IsAlcoholic: boolPtr(true),
		Categories:  []domain.Category{{ID: 1}},
	}))
	require.NoError(t, repo.Create(ctx, &domain.Cocktail{
		Name:        "Gin-free Fizz",
		IsAlcoholic: boolPtr(false),
	}))

	alcoholic := true
	got, total, err := repo.Search(ctx, domain.SearchParams{
		Query:       "fizz",
		Limit:       10,
		IsAlcoholic: &alcoholic,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Gin Fizz", got[0].Name)

	categoryID := uint(1)
	got, total, err = repo.Search(ctx, domain.SearchParams{
		Query:      "fizz",
		Limit:      10,
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Gin Fizz", got[0].Name)
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewGormCocktailRepository(db)
	ctx := context.Background()

	cocktail := &domain.Cocktail{
		Name:         "Margarita",
		Ingredients:  []domain.Ingredient{{Name: "Tequila", UnitID: uintPtr(1)}},
		Instructions: []domain.Instruction{{Text: "Shake with ice"}},
		Allergens:    []domain.Allergen{{ID: 1}},
		Categories:   []domain.Category{{ID: 1}},
		Tags:         []domain.Tag{{ID: 1}},
	}
	require.NoError(t, repo.Create(ctx, cocktail))
	require.NoError(t, db.Create(&favoriteDomain.Favorite{
		UserID:     "6f1b4f6e-2f86-4b9e-bb1d-0d6a3ad9b0aa",
		CocktailID: cocktail.ID,
	}).Error)

	require.NoError(t, repo.Delete(ctx, cocktail.ID))

	_, err := repo.FindByID(ctx, cocktail.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for table, model := range map[string]interface{}{
		"ingredients":  &domain.Ingredient{},
		"instructions": &domain.Instruction{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("cocktail_id = ?", cocktail.ID).Count(&count).Error, table)
		assert.Zero(t, count, table)
	}
	for _, joinTable := range []string{"cocktail_allergens", "cocktail_categories", "cocktail_tags", "favorites"} {
		var count int64
		require.NoError(t, db.Table(joinTable).Where("cocktail_id = ?", cocktail.ID).Count(&count).Error)
		assert.Zero(t, count, joinTable)
	}
}

func TestDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCocktailRepository(db)

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

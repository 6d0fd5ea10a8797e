package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

// GormCocktailRepository implements domain.CocktailRepository using GORM.
type GormCocktailRepository struct {
	db *gorm.DB
}

func NewGormCocktailRepository(db *gorm.DB) *GormCocktailRepository {
	return &GormCocktailRepository{db: db}
}

// AutoMigrate creates the catalog tables, lookups and join tables included.
func (r *GormCocktailRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.GlassType{},
		&domain.Allergen{},
		&domain.Category{},
		&domain.Tag{},
		&domain.Unit{},
		&domain.Cocktail{},
		&domain.Ingredient{},
		&domain.Instruction{},
		&domain.Comment{},
	)
}

// Create performs the composite write: cocktail row, children, join rows.
// Lookup rows are omitted from the write so joins only connect existing ids.
func (r *GormCocktailRepository) Create(ctx context.Context, cocktail *domain.Cocktail) error {
	err := r.db.WithContext(ctx).
		Omit("Glass", "Allergens.*", "Categories.*", "Tags.*", "Ingredients.Unit").
		Create(cocktail).Error
	if err != nil {
		return fmt.Errorf("failed to create cocktail: %w", err)
	}
	return nil
}

func (r *GormCocktailRepository) FindByID(ctx context.Context, id uint) (*domain.Cocktail, error) {
	var cocktail domain.Cocktail
	err := r.expand(r.db.WithContext(ctx), domain.ExpandFull).First(&cocktail, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cocktail: %w", err)
	}
	return &cocktail, nil
}

func (r *GormCocktailRepository) FindAll(ctx context.Context, params domain.ListParams) ([]domain.Cocktail, error) {
	var cocktails []domain.Cocktail
	err := r.expand(r.db.WithContext(ctx), params.Expand).
		Order("id DESC").
		Limit(params.Take).
		Offset(params.Skip).
		Find(&cocktails).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cocktails: %w", err)
	}
	return cocktails, nil
}

func (r *GormCocktailRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Cocktail{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cocktails: %w", err)
	}
	return count, nil
}

// Search matches name, description, or any ingredient name case-insensitively
// and applies the optional exact filters. Results are ordered by name
// ascending with glass and ingredient previews loaded.
func (r *GormCocktailRepository) Search(ctx context.Context, params domain.SearchParams) ([]domain.Cocktail, int64, error) {
	scope := r.searchScope(params)

	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Cocktail{}).Scopes(scope).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	var cocktails []domain.Cocktail
	err = r.db.WithContext(ctx).Model(&domain.Cocktail{}).Scopes(scope).
		Order("cocktails.name ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		Preload("Glass").
		Preload("Ingredients.Unit").
		Find(&cocktails).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search cocktails: %w", err)
	}
	return cocktails, total, nil
}

// escapeLike escapes LIKE metacharacters so user text only matches
// literally. Pairs with an ESCAPE '\' clause on every LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *GormCocktailRepository) searchScope(params domain.SearchParams) func(*gorm.DB) *gorm.DB {
	like := "%" + escapeLike(strings.ToLower(params.Query)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		matchingIngredients := r.db.Model(&domain.Ingredient{}).
			Select("cocktail_id").
			Where(`LOWER(name) LIKE ? ESCAPE '\'`, like)

		db = db.Where(
			r.db.Where(`LOWER(cocktails.name) LIKE ? ESCAPE '\'`, like).
				Or(`LOWER(cocktails.description) LIKE ? ESCAPE '\'`, like).
				Or("cocktails.id IN (?)", matchingIngredients),
		)

		if params.IsAlcoholic != nil {
			db = db.Where("cocktails.is_alcoholic = ?", *params.IsAlcoholic)
		}
		if params.CategoryID != nil {
			db = db.Where("cocktails.id IN (?)", r.db.Table("cocktail_categories").
				Select("cocktail_id").Where("category_id = ?", *params.CategoryID))
		}
		if params.TagID != nil {
			db = db.Where("cocktails.id IN (?)", r.db.Table("cocktail_tags").
				Select("cocktail_id").Where("tag_id = ?", *params.TagID))
		}
		if params.GlassTypeID != nil {
			db = db.Where("cocktails.glass_type_id = ?", *params.GlassTypeID)
		}
		return db
	}
}

// Delete removes all dependent rows and the cocktail itself in one
// transaction. The datastore does not cascade on its own.
func (r *GormCocktailRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cocktail_id = ?", id).Delete(&domain.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingredients: %w", err)
		}
		if err := tx.Where("cocktail_id = ?", id).Delete(&domain.Instruction{}).Error; err != nil {
			return fmt.Errorf("failed to delete instructions: %w", err)
		}
		for _, joinTable := range []string{"cocktail_allergens", "cocktail_categories", "cocktail_tags"} {
			if err := tx.Exec("DELETE FROM "+joinTable+" WHERE cocktail_id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete %s rows: %w", joinTable, err)
			}
		}
		if err := tx.Where("cocktail_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		if err := tx.Exec("DELETE FROM favorites WHERE cocktail_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}

		result := tx.Delete(&domain.Cocktail{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete cocktail: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *GormCocktailRepository) expand(db *gorm.DB, mode domain.Expansion) *gorm.DB {
	if mode == domain.ExpandFull {
		return db.
			Preload("Glass").
			Preload("Ingredients.Unit").
			Preload("Instructions").
			Preload("Allergens").
			Preload("Categories").
			Preload("Tags")
	}
	return db.Preload("Glass")
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/pantry/domain"
)

// GormPantryRepository implements domain.PantryRepository using GORM.
type GormPantryRepository struct {
	db *gorm.DB
}

func NewGormPantryRepository(db *gorm.DB) *GormPantryRepository {
	return &GormPantryRepository{db: db}
}

func (r *GormPantryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.PantryItem{})
}

func (r *GormPantryRepository) FindByUser(ctx context.Context, userID string, params domain.ListParams) ([]domain.PantryItem, error) {
	var items []domain.PantryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Unit").
		Order("created_at DESC, id DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pantry items: %w", err)
	}
	return items, nil
}

func (r *GormPantryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.PantryItem{}).
		Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pantry items: %w", err)
	}
	return count, nil
}

// escapeLike escapes LIKE metacharacters so user text only matches
// literally. Pairs with an ESCAPE '\' clause on the LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *GormPantryRepository) Search(ctx context.Context, userID string, params domain.SearchParams) ([]domain.PantryItem, int64, error) {
	pattern := "%" + escapeLike(strings.ToLower(params.Query)) + "%"
	match := func(db *gorm.DB) *gorm.DB {
		return db.Where(`user_id = ? AND LOWER(ingredient_name) LIKE ? ESCAPE '\'`, userID, pattern)
	}

	var total int64
	err := r.db.WithContext(ctx).Model(&domain.PantryItem{}).Scopes(match).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pantry items: %w", err)
	}

	var items []domain.PantryItem
	err = r.db.WithContext(ctx).Scopes(match).
		Preload("Unit").
		Order("ingredient_name ASC, id ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search pantry items: %w", err)
	}
	return items, total, nil
}

func (r *GormPantryRepository) FindMatch(ctx context.Context, userID, ingredientName string, unitID *uint) (*domain.PantryItem, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(ingredient_name) = ?", userID, strings.ToLower(ingredientName))
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	} else {
		query = query.Where("unit_id IS NULL")
	}

	var item domain.PantryItem
	if err := query.Preload("Unit").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pantry item: %w", err)
	}
	return &item, nil
}

func (r *GormPantryRepository) Create(ctx context.Context, item *domain.PantryItem) error {
	if err := r.db.WithContext(ctx).Omit("Unit").Create(item).Error; err != nil {
		return fmt.Errorf("failed to create pantry item: %w", err)
	}
	return nil
}

func (r *GormPantryRepository) Update(ctx context.Context, item *domain.PantryItem) error {
	// Save writes every column, so a merged amount and an untouched expiry
	// both land as-is.
	if err := r.db.WithContext(ctx).Omit("Unit").Save(item).Error; err != nil {
		return fmt.Errorf("failed to update pantry item: %w", err)
	}
	return nil
}

func (r *GormPantryRepository) FindUnit(ctx context.Context, id uint) (*cocktail.Unit, error) {
	var unit cocktail.Unit
	if err := r.db.WithContext(ctx).First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}
	return &unit, nil
}

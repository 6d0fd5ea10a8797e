package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

// GormFavoriteRepository implements domain.FavoriteRepository using GORM.
type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Omit("Cocktail").Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrCocktailNotFound
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

func (r *GormFavoriteRepository) FindByPair(ctx context.Context, userID string, cocktailID uint) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND cocktail_id = ?", userID, cocktailID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

func (r *GormFavoriteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID string, params domain.ListParams) ([]domain.Favorite, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if params.Expand == cocktail.ExpandFull {
		query = query.
			Preload("Cocktail.Glass").
			Preload("Cocktail.Ingredients.Unit").
			Preload("Cocktail.Instructions").
			Preload("Cocktail.Allergens").
			Preload("Cocktail.Categories").
			Preload("Cocktail.Tags")
	} else {
		query = query.Preload("Cocktail.Glass")
	}

	var favorites []domain.Favorite
	err := query.
		Order("id DESC").
		Limit(params.Take).
		Offset(params.Skip).
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return favorites, nil
}

func (r *GormFavoriteRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

func (r *GormFavoriteRepository) CountByCocktail(ctx context.Context, cocktailID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("cocktail_id = ?", cocktailID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

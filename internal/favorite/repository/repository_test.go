package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/favorite/domain"
)

const (
	userAlice = "11111111-1111-4111-8111-111111111111"
	userBob   = "22222222-2222-4222-8222-222222222222"
)

func newTestRepo(t *testing.T) (*GormFavoriteRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cocktail.GlassType{}, &cocktail.Cocktail{}))

	repo := NewGormFavoriteRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo, db
}

func TestCreateDuplicatePair(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&cocktail.Cocktail{Name: "Mojito"}).Error)

	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userAlice, CocktailID: 1}))

	err := repo.Create(ctx, &domain.Favorite{UserID: userAlice, CocktailID: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// A different user may favorite the same cocktail.
	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userBob, CocktailID: 1}))
}

func TestFindByPairAndDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userAlice, CocktailID: 7}))

	found, err := repo.FindByPair(ctx, userAlice, 7)
	require.NoError(t, err)
	assert.Equal(t, userAlice, found.UserID)

	require.NoError(t, repo.Delete(ctx, found.ID))

	_, err = repo.FindByPair(ctx, userAlice, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, found.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByUserNewestFirstWithCocktail(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, db.Create(&cocktail.Cocktail{Name: name}).Error)
	}
	for id := uint(1); id <= 3; id++ {
		require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userAlice, CocktailID: id}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userBob, CocktailID: 1}))

	got, err := repo.FindByUser(ctx, userAlice, domain.ListParams{Take: 2, Expand: cocktail.ExpandBasic})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.EqualValues(t, 3, got[0].CocktailID)
	assert.EqualValues(t, 2, got[1].CocktailID)
	require.NotNil(t, got[0].Cocktail)
	assert.Equal(t, "Third", got[0].Cocktail.Name)

	total, err := repo.CountByUser(ctx, userAlice)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestCountByCocktail(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userAlice, CocktailID: 5}))
	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: userBob, CocktailID: 5}))

	count, err := repo.CountByCocktail(ctx, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByCocktail(ctx, 6)
	require.NoError(t, err)
	assert.Zero(t, count)
}

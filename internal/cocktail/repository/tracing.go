package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
)

var tracer = otel.Tracer("cocktail-repository")

// GormCocktailRepositoryWithTracing decorates GormCocktailRepository with
// OpenTelemetry spans. It satisfies domain.CocktailRepository.
type GormCocktailRepositoryWithTracing struct {
	*GormCocktailRepository
}

func NewGormCocktailRepositoryWithTracing(db *gorm.DB) *GormCocktailRepositoryWithTracing {
	return &GormCocktailRepositoryWithTracing{
		GormCocktailRepository: NewGormCocktailRepository(db),
	}
}

func (r *GormCocktailRepositoryWithTracing) Create(ctx context.Context, cocktail *domain.Cocktail) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("cocktail.name", cocktail.Name),
			attribute.Int("cocktail.ingredients", len(cocktail.Ingredients)),
			attribute.Int("cocktail.instructions", len(cocktail.Instructions)),
		),
	)
	defer span.End()

	if err := r.GormCocktailRepository.Create(ctx, cocktail); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("cocktail.id", int(cocktail.ID)))
	return nil
}

func (r *GormCocktailRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Cocktail, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("cocktail.id", int(id))),
	)
	defer span.End()

	cocktail, err := r.GormCocktailRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("cocktail.name", cocktail.Name))
	return cocktail, nil
}

func (r *GormCocktailRepositoryWithTracing) FindAll(ctx context.Context, params domain.ListParams) ([]domain.Cocktail, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("list.skip", params.Skip),
			attribute.Int("list.take", params.Take),
			attribute.String("list.expand", string(params.Expand)),
		),
	)
	defer span.End()

	cocktails, err := r.GormCocktailRepository.FindAll(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("list.count", len(cocktails)))
	return cocktails, nil
}

func (r *GormCocktailRepositoryWithTracing) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.GormCocktailRepository.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("cocktails.total", count))
	return count, nil
}

func (r *GormCocktailRepositoryWithTracing) Search(ctx context.Context, params domain.SearchParams) ([]domain.Cocktail, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(
			attribute.String("search.query", params.Query),
			attribute.Int("search.limit", params.Limit),
			attribute.Int("search.offset", params.Offset),
		),
	)
	defer span.End()

	cocktails, total, err := r.GormCocktailRepository.Search(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("search.count", len(cocktails)),
		attribute.Int64("search.total", total),
	)
	return cocktails, total, nil
}

func (r *GormCocktailRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("cocktail.id", int(id))),
	)
	defer span.End()

	if err := r.GormCocktailRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

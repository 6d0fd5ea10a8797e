package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs mounts the interactive API documentation UI.
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/api-docs/").Handler(swaggerHandler)
}

// ListCocktails godoc
// @Summary List cocktails
// @Description Paginated cocktail catalog. with=full expands all relations, basic expands only the glass type.
// @Tags Cocktails
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param take query int false "Page size, capped at 100" default(20)
// @Param with query string false "Expansion mode" Enums(basic, full)
// @Success 200 {object} object{items=array,total=int,skip=int,take=int}
// @Failure 500 {object} object{error=string}
// @Router /api/cocktails [get]
func (h *CocktailHandler) ListCocktailsDoc() {}

// SearchCocktails godoc
// @Summary Search cocktails
// @Description Case-insensitive contains match on name, description, or any ingredient name, AND-ed with optional exact filters. Each result carries at most 6 ingredient previews.
// @Tags Cocktails
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Page size [1,100]" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Param isAlcoholic query string false "Filter on the alcoholic flag" Enums(true, false)
// @Param categoryId query int false "Category filter"
// @Param tagId query int false "Tag filter"
// @Param glassTypeId query int false "Glass type filter"
// @Success 200 {object} object{q=string,total=int,limit=int,offset=int,items=array}
// @Failure 400 {object} object{error=object}
// @Failure 500 {object} object{error=string}
// @Router /api/cocktails/search [get]
func (h *CocktailHandler) SearchCocktailsDoc() {}

// GetCocktail godoc
// @Summary Get a cocktail by id
// @Description Single cocktail with all relations expanded.
// @Tags Cocktails
// @Produce json
// @Param id path int true "Cocktail ID"
// @Success 200 {object} domain.Cocktail
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/cocktails/{id} [get]
func (h *CocktailHandler) GetCocktailDoc() {}

// CreateCocktail godoc
// @Summary Create a cocktail
// @Description Composite write: the cocktail row, its ingredients and instructions, and allergen/category/tag join rows. Unknown body keys are rejected.
// @Tags Cocktails
// @Accept json
// @Produce json
// @Param request body object true "Cocktail payload"
// @Success 201 {object} domain.Cocktail
// @Failure 400 {object} object{error=object}
// @Failure 500 {object} object{error=string}
// @Router /api/cocktails/add-cocktail [post]
func (h *CocktailHandler) CreateCocktailDoc() {}

// DeleteCocktail godoc
// @Summary Delete a cocktail
// @Description Removes the cocktail and every dependent row (ingredients, instructions, join rows, comments, favorites) atomically.
// @Tags Cocktails
// @Param id path int true "Cocktail ID"
// @Success 204
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/cocktails/{id} [delete]
func (h *CocktailHandler) DeleteCocktailDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{error=string}
// @Router /health [get]
func (h *CocktailHandler) HealthCheckDoc() {}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/cocktail/repository"
	favoriteDomain "github.com/barkeep/cocktail-api/internal/favorite/domain"
)

func newTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := repository.NewGormCocktailRepository(db)
	require.NoError(t, repo.AutoMigrate())
	require.NoError(t, db.AutoMigrate(&favoriteDomain.Favorite{}))

	handler := NewCocktailHandler(repo, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, db
}

func doRequest(router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetCocktailInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cocktails/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid id"}`, rec.Body.String())
}

func TestGetCocktailNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cocktails/123", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Cocktail not found"}`, rec.Body.String())
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	router, db := newTestRouter(t)
	require.NoError(t, db.Create(&domain.Unit{ID: 1, Name: "ml"}).Error)

	payload := map[string]interface{}{
		"name":         "Negroni",
		"description":  "Equal parts",
		"is_alcoholic": true,
		"ingredients": []map[string]interface{}{
			{"name": "Gin", "amount": "30", "unit_id": 1},
			{"name": "Campari", "amount": 30, "unit_id": 1},
		},
		"instructions": []map[string]interface{}{
			{"step_number": 1, "text": "Stir over ice"},
		},
	}

	rec := doRequest(router, http.MethodPost, "/api/cocktails/add-cocktail", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Cocktail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = doRequest(router, http.MethodGet, "/api/cocktails/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Cocktail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Negroni", got.Name)
	require.Len(t, got.Ingredients, 2)
	// Amounts round-trip as decimal strings whether sent as string or number.
	assert.Equal(t, "30", got.Ingredients[0].Amount.Decimal.String())
	assert.Equal(t, "30", got.Ingredients[1].Amount.Decimal.String())
	require.Len(t, got.Instructions, 1)
}

func TestCreateRejectsUnknownKeys(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/cocktails/add-cocktail", map[string]interface{}{
		"name":     "Sidecar",
		"intruder": true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateToleratesUnknownNestedKeys(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/cocktails/add-cocktail", map[string]interface{}{
		"name": "Sidecar",
		"ingredients": []map[string]interface{}{
			{"name": "Cognac", "amount": "50", "optional": false},
		},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRequiresName(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/cocktails/add-cocktail", map[string]interface{}{
		"description": "anonymous",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error map[string][]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "name")
}

func TestListClampsTake(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cocktails?take=500", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Take int `json:"take"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 100, body.Take)
}

func TestSearchRequiresQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cocktails/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchPreviewCapsIngredients(t *testing.T) {
	router, db := newTestRouter(t)

	ingredients := make([]domain.Ingredient, 0, 8)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		ingredients = append(ingredients, domain.Ingredient{Name: name})
	}
	require.NoError(t, db.Create(&domain.Cocktail{Name: "Kitchen Sink", Ingredients: ingredients}).Error)

	rec := doRequest(router, http.MethodGet, "/api/cocktails/search?q=kitchen", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total int64 `json:"total"`
		Items []struct {
			Name               string `json:"name"`
			IngredientsPreview []struct {
				Name string `json:"name"`
			} `json:"ingredientsPreview"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.Total)
	require.Len(t, body.Items, 1)
	assert.Len(t, body.Items[0].IngredientsPreview, 6)
}

func TestSearchGlassKeepsSnakeCaseImageKey(t *testing.T) {
	router, db := newTestRouter(t)

	img := "https://img.example/coupe.png"
	require.NoError(t, db.Create(&domain.GlassType{ID: 1, Name: "Coupe", ImageURL: &img}).Error)
	glassID := uint(1)
	require.NoError(t, db.Create(&domain.Cocktail{Name: "Sidecar", GlassTypeID: &glassID}).Error)

	rec := doRequest(router, http.MethodGet, "/api/cocktails/search?q=sidecar", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			Glass map[string]interface{} `json:"glass"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Coupe", body.Items[0].Glass["name"])
	assert.Equal(t, img, body.Items[0].Glass["image_url"])
}

func TestSearchRejectsBadAlcoholicLiteral(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cocktails/search?q=gin&isAlcoholic=yes", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCocktail(t *testing.T) {
	router, db := newTestRouter(t)
	require.NoError(t, db.Create(&domain.Cocktail{Name: "Paloma"}).Error)

	rec := doRequest(router, http.MethodDelete, "/api/cocktails/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/cocktails/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/cocktails/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

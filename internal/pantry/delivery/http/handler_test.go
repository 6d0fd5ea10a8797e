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

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/pantry/domain"
	"github.com/barkeep/cocktail-api/internal/pantry/repository"
)

const userID = "66666666-6666-4666-8666-666666666666"

func newTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cocktail.Unit{}))

	repo := repository.NewGormPantryRepository(db)
	require.NoError(t, repo.AutoMigrate())

	handler := NewPantryHandler(repo)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, db
}

func doRequest(router *mux.Router, method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type shapedItem struct {
	ID             uint    `json:"id"`
	IngredientName string  `json:"ingredientName"`
	Amount         *string `json:"amount"`
	Unit           *struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"unit"`
	ExpiresAt *string `json:"expiresAt"`
}

func TestAddPantryItemMergesAmounts(t *testing.T) {
	router, db := newTestRouter(t)
	require.NoError(t, db.Create(&cocktail.Unit{ID: 1, Name: "g"}).Error)

	first := map[string]interface{}{
		"userId":         userID,
		"ingredientName": "Sugar",
		"amount":         2,
		"unitId":         1,
	}
	rec := doRequest(router, http.MethodPost, "/api/pantry", first, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	second := map[string]interface{}{
		"userId":         userID,
		"ingredientName": "SUGAR",
		"amount":         "3",
		"unitId":         1,
	}
	rec = doRequest(router, http.MethodPost, "/api/pantry", second, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item shapedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.NotNil(t, item.Amount)
	assert.Equal(t, "5", *item.Amount)
	require.NotNil(t, item.Unit)
	assert.Equal(t, "g", item.Unit.Name)

	var count int64
	require.NoError(t, db.Model(&domain.PantryItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddPantryItemKeepsExpiryOnMerge(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
		"userId":         userID,
		"ingredientName": "Mint",
		"amount":         1,
		"expiresAt":      "2026-09-15",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
		"userId":         userID,
		"ingredientName": "mint",
		"amount":         1,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item shapedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.NotNil(t, item.ExpiresAt)
	assert.Contains(t, *item.ExpiresAt, "2026-09-15")
}

func TestAddPantryItemUnknownUnit(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
		"userId":         userID,
		"ingredientName": "Sugar",
		"unitId":         42,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "unitId not found"}`, rec.Body.String())
}

func TestAddPantryItemUserIDFromHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
		"ingredientName": "Lime",
	}, map[string]string{"x-user-id": userID})

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAddPantryItemValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
		"userId": userID,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
		"userId":         userID,
		"ingredientName": "Sugar",
		"amount":         -2,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPantryNewestFirstWithStringAmounts(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, name := range []string{"Gin", "Tonic"} {
		rec := doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
			"userId":         userID,
			"ingredientName": name,
			"amount":         "70.50",
		}, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doRequest(router, http.MethodGet, "/api/pantry?userId="+userID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total  int64        `json:"total"`
		Limit  int          `json:"limit"`
		Offset int          `json:"offset"`
		Items  []shapedItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body.Total)
	assert.Equal(t, 20, body.Limit)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Tonic", body.Items[0].IngredientName)
	require.NotNil(t, body.Items[0].Amount)
	assert.Equal(t, "70.5", *body.Items[0].Amount)
}

func TestListPantryRequiresUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/pantry", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchPantry(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, name := range []string{"Lime juice", "Lemon juice", "Sugar"} {
		doRequest(router, http.MethodPost, "/api/pantry", map[string]interface{}{
			"userId":         userID,
			"ingredientName": name,
		}, nil)
	}

	rec := doRequest(router, http.MethodGet, "/api/pantry/search?q=juice", nil,
		map[string]string{"x-user-id": userID})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Q     string       `json:"q"`
		Total int64        `json:"total"`
		Items []shapedItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "juice", body.Q)
	assert.EqualValues(t, 2, body.Total)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Lemon juice", body.Items[0].IngredientName)
	assert.Equal(t, "Lime juice", body.Items[1].IngredientName)
}

func TestSearchPantryRequiresQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/pantry/search?userId="+userID, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

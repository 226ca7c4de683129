package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecipeService struct {
	analyzeRes domain.AnalyzeRecipeResponse
	analyzeErr error
	saveRes    domain.RecipeResponse
	saveErr    error
	detailRes  domain.RecipeResponse
	detailErr  error
	variantRes domain.RecipeVariantResponse
	variantErr error
}

func (s *stubRecipeService) AnalyzeRecipe(_ context.Context, _ *multipart.FileHeader) (domain.AnalyzeRecipeResponse, error) {
	return s.analyzeRes, s.analyzeErr
}

func (s *stubRecipeService) SaveRecipe(_ context.Context, _ domain.SaveRecipeRequest) (domain.RecipeResponse, error) {
	return s.saveRes, s.saveErr
}

func (s *stubRecipeService) GetRecipes(_ context.Context) ([]domain.RecipeResponse, error) {
	return nil, nil
}

func (s *stubRecipeService) GetRecipeDetail(_ context.Context, _ string) (domain.RecipeResponse, error) {
	return s.detailRes, s.detailErr
}

func (s *stubRecipeService) CreateVariant(_ context.Context, _ string, _ domain.CreateVariantRequest) (domain.RecipeVariantResponse, error) {
	return s.variantRes, s.variantErr
}

func newRecipeTestApp(svc *stubRecipeService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewRecipeHandler(svc, utils.Validate)
	app.Post("/api/analyze-recipe", handler.AnalyzeRecipe)
	app.Post("/api/recipes", handler.SaveRecipe)
	app.Get("/api/recipes/:id", handler.GetRecipeDetail)
	app.Post("/api/recipes/:id/variants", handler.CreateVariant)
	return app
}

func TestAnalyzeRecipe_Success(t *testing.T) {
	svc := &stubRecipeService{
		analyzeRes: domain.AnalyzeRecipeResponse{
			Name:            "김치찌개",
			CookingTime:     "30분",
			MainIngredients: []string{"김치", "돼지고기"},
		},
	}
	app := newRecipeTestApp(svc)

	res, err := app.Test(multipartImageRequest(t, "/api/analyze-recipe"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	parsed, ok := body["recipe"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "김치찌개", parsed["name"])
	assert.Equal(t, "30분", parsed["cookingTime"])
}

func TestAnalyzeRecipe_NotDetected(t *testing.T) {
	svc := &stubRecipeService{analyzeErr: domain.ErrRecipeNotDetected}
	app := newRecipeTestApp(svc)

	res, err := app.Test(multipartImageRequest(t, "/api/analyze-recipe"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "레시피 정보를 추출할 수 없습니다.", body["error"])
	assert.NotContains(t, body, "details")
}

func TestSaveRecipe_ValidationFailure(t *testing.T) {
	app := newRecipeTestApp(&stubRecipeService{})

	payload, err := json.Marshal(map[string]any{"name": "김치찌개"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageFailedSaveRecipe, body["error"])
}

func TestCreateVariant_ParentNotFound(t *testing.T) {
	svc := &stubRecipeService{variantErr: domain.ErrRecipeNotFound}
	app := newRecipeTestApp(svc)

	payload, err := json.Marshal(domain.CreateVariantRequest{
		Name: "참치 김치찌개",
		ModifiedIngredients: []domain.IngredientSubstitution{
			{Original: "돼지고기", Modified: "참치"},
		},
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/unknown/variants", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageRecipeNotFound, body["error"])
}

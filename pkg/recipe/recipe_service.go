package recipe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/entities"
	"github.com/doyoonear/motsulmoo/pkg/analyzer"
	"github.com/doyoonear/motsulmoo/pkg/ocr"
)

type (
	RecipeService interface {
		// AnalyzeRecipe extracts a recipe from an uploaded image. A null
		// answer from the provider is domain.ErrRecipeNotDetected.
		AnalyzeRecipe(ctx context.Context, file *multipart.FileHeader) (domain.AnalyzeRecipeResponse, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeResponse, error)
		CreateVariant(ctx context.Context, recipeID string, req domain.CreateVariantRequest) (domain.RecipeVariantResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		textExtractor    ocr.TextExtractor
		analyzer         analyzer.Analyzer
	}
)

func NewRecipeService(recipeRepository RecipeRepository, textExtractor ocr.TextExtractor, textAnalyzer analyzer.Analyzer) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		textExtractor:    textExtractor,
		analyzer:         textAnalyzer,
	}
}

func (s *recipeService) AnalyzeRecipe(ctx context.Context, file *multipart.FileHeader) (domain.AnalyzeRecipeResponse, error) {
	if file == nil {
		return domain.AnalyzeRecipeResponse{}, domain.ErrMissingImageFile
	}

	f, err := file.Open()
	if err != nil {
		return domain.AnalyzeRecipeResponse{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.AnalyzeRecipeResponse{}, err
	}

	base64Image := base64.StdEncoding.EncodeToString(data)
	extractedText, err := s.textExtractor.ExtractText(ctx, base64Image)
	if err != nil {
		return domain.AnalyzeRecipeResponse{}, err
	}

	recipe, err := s.analyzer.ExtractRecipe(ctx, extractedText)
	if err != nil {
		return domain.AnalyzeRecipeResponse{}, err
	}
	if recipe == nil {
		return domain.AnalyzeRecipeResponse{}, domain.ErrRecipeNotDetected
	}

	return domain.AnalyzeRecipeResponse{
		Name:                  recipe.Name,
		CookingTime:           recipe.CookingTime,
		MainIngredients:       recipe.MainIngredients,
		AdditionalIngredients: recipe.AdditionalIngredients,
		Image:                 base64Image,
		Thumbnail:             base64Image,
	}, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		ID:                    uuid.New(),
		Name:                  req.Name,
		CookingTime:           req.CookingTime,
		MainIngredients:       marshalStringList(req.MainIngredients),
		AdditionalIngredients: marshalStringList(req.AdditionalIngredients),
		Seasonings:            marshalStringList(req.Seasonings),
		Instructions:          marshalStringList(req.Instructions),
		ImagePath:             req.ImagePath,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, s.toResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toResponse(recipe), nil
}

func (s *recipeService) CreateVariant(ctx context.Context, recipeID string, req domain.CreateVariantRequest) (domain.RecipeVariantResponse, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.RecipeVariantResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeVariantResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeVariantResponse{}, err
	}

	substitutionsJSON, err := json.Marshal(req.ModifiedIngredients)
	if err != nil {
		return domain.RecipeVariantResponse{}, err
	}

	variant := &entities.RecipeVariant{
		ID:                  uuid.New(),
		Name:                req.Name,
		ParentRecipeID:      recipe.ID,
		ModifiedIngredients: string(substitutionsJSON),
	}

	if err := s.recipeRepository.CreateVariant(ctx, variant); err != nil {
		return domain.RecipeVariantResponse{}, err
	}

	return toVariantResponse(variant), nil
}

func (s *recipeService) toResponse(recipe *entities.Recipe) domain.RecipeResponse {
	response := domain.RecipeResponse{
		ID:                    recipe.ID.String(),
		Name:                  recipe.Name,
		CookingTime:           recipe.CookingTime,
		MainIngredients:       unmarshalStringList(recipe.MainIngredients),
		AdditionalIngredients: unmarshalStringList(recipe.AdditionalIngredients),
		Seasonings:            unmarshalStringList(recipe.Seasonings),
		Instructions:          unmarshalStringList(recipe.Instructions),
		ImagePath:             recipe.ImagePath,
		CreatedAt:             recipe.CreatedAt,
	}

	for _, variant := range recipe.Variants {
		response.Variants = append(response.Variants, toVariantResponse(variant))
	}

	return response
}

func toVariantResponse(variant *entities.RecipeVariant) domain.RecipeVariantResponse {
	var substitutions []domain.IngredientSubstitution
	_ = json.Unmarshal([]byte(variant.ModifiedIngredients), &substitutions)

	return domain.RecipeVariantResponse{
		ID:                  variant.ID.String(),
		Name:                variant.Name,
		ParentRecipeID:      variant.ParentRecipeID.String(),
		ModifiedIngredients: substitutions,
		CreatedAt:           variant.CreatedAt,
	}
}

func marshalStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	encoded, _ := json.Marshal(list)
	return string(encoded)
}

func unmarshalStringList(encoded string) []string {
	list := []string{}
	if encoded == "" {
		return list
	}
	_ = json.Unmarshal([]byte(encoded), &list)
	return list
}

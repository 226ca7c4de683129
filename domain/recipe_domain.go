package domain

import (
	"errors"
	"time"
)

var (
	MessageRecipeNotDetected   = "레시피 정보를 추출할 수 없습니다."
	MessageFailedAnalyzeRecipe = "레시피 분석 중 오류가 발생했습니다."
	MessageFailedSaveRecipe    = "레시피 저장 중 오류가 발생했습니다."
	MessageFailedGetRecipes    = "레시피 조회 중 오류가 발생했습니다."
	MessageRecipeNotFound      = "레시피를 찾을 수 없습니다."
	MessageFailedCreateVariant = "레시피 변형 저장 중 오류가 발생했습니다."

	ErrRecipeNotDetected = errors.New("no recipe detected in extracted text")
	ErrRecipeNotFound    = errors.New("recipe not found")
)

type (
	// AnalyzedRecipe is the JSON shape requested from the AI provider.
	AnalyzedRecipe struct {
		Name                  string   `json:"name"`
		CookingTime           string   `json:"cookingTime"`
		MainIngredients       []string `json:"mainIngredients"`
		AdditionalIngredients []string `json:"additionalIngredients"`
	}

	AnalyzeRecipeResponse struct {
		Name                  string   `json:"name"`
		CookingTime           string   `json:"cookingTime"`
		MainIngredients       []string `json:"mainIngredients"`
		AdditionalIngredients []string `json:"additionalIngredients"`
		Image                 string   `json:"image"`
		Thumbnail             string   `json:"thumbnail"`
	}

	SaveRecipeRequest struct {
		Name                  string   `json:"name" validate:"required"`
		CookingTime           string   `json:"cookingTime" validate:"required"`
		MainIngredients       []string `json:"mainIngredients" validate:"required,min=1,dive,required"`
		AdditionalIngredients []string `json:"additionalIngredients" validate:"omitempty,dive,required"`
		Seasonings            []string `json:"seasonings" validate:"omitempty,dive,required"`
		Instructions          []string `json:"instructions" validate:"omitempty,dive,required"`
		ImagePath             string   `json:"imagePath"`
	}

	IngredientSubstitution struct {
		Original string `json:"original" validate:"required"`
		Modified string `json:"modified" validate:"required"`
	}

	CreateVariantRequest struct {
		Name                string                   `json:"name" validate:"required"`
		ModifiedIngredients []IngredientSubstitution `json:"modifiedIngredients" validate:"required,min=1,dive"`
	}

	RecipeVariantResponse struct {
		ID                  string                   `json:"id"`
		Name                string                   `json:"name"`
		ParentRecipeID      string                   `json:"parentRecipeId"`
		ModifiedIngredients []IngredientSubstitution `json:"modifiedIngredients"`
		CreatedAt           time.Time                `json:"createdAt"`
	}

	RecipeResponse struct {
		ID                    string                  `json:"id"`
		Name                  string                  `json:"name"`
		CookingTime           string                  `json:"cookingTime"`
		MainIngredients       []string                `json:"mainIngredients"`
		AdditionalIngredients []string                `json:"additionalIngredients"`
		Seasonings            []string                `json:"seasonings"`
		Instructions          []string                `json:"instructions"`
		ImagePath             string                  `json:"imagePath"`
		CreatedAt             time.Time               `json:"createdAt"`
		Variants              []RecipeVariantResponse `json:"variants,omitempty"`
	}
)

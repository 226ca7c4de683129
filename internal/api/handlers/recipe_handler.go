package handlers

import (
	"errors"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/internal/api/presenters"
	"github.com/doyoonear/motsulmoo/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		AnalyzeRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateVariant(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) AnalyzeRecipe(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingImageFile, nil)
	}

	res, err := h.recipeService.AnalyzeRecipe(c.Context(), file)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotDetected) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRecipeNotDetected, nil)
		}
		if errors.Is(err, domain.ErrNoTextFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoTextFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"recipe": res,
	})
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.SaveRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"recipe": res,
	})
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"recipes": recipes,
	})
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"recipe": res,
	})
}

func (h *recipeHandler) CreateVariant(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.CreateVariantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateVariant, err)
	}

	res, err := h.recipeService.CreateVariant(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateVariant, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"variant": res,
	})
}

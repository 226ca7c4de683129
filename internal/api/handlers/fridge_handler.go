package handlers

import (
	"errors"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/internal/api/presenters"
	"github.com/doyoonear/motsulmoo/pkg/fridge"

	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		GetFridgeItems(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService) FridgeHandler {
	return &fridgeHandler{fridgeService: fridgeService}
}

func (h *fridgeHandler) GetFridgeItems(c *fiber.Ctx) error {
	category := c.Query("category")

	items, err := h.fridgeService.GetFridgeItems(c.Context(), category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidCategoryFilter, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFridgeItems, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items": items,
	})
}

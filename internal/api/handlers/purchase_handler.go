package handlers

import (
	"errors"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/internal/api/presenters"
	"github.com/doyoonear/motsulmoo/pkg/purchase"

	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		AnalyzePurchase(c *fiber.Ctx) error
		AnalyzeReceipt(c *fiber.Ctx) error
		GetPurchaseReceipts(c *fiber.Ctx) error
		DeletePurchaseReceipt(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService) PurchaseHandler {
	return &purchaseHandler{purchaseService: purchaseService}
}

func (h *purchaseHandler) AnalyzePurchase(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingImageFile, nil)
	}

	res, err := h.purchaseService.AnalyzePurchase(c.Context(), file)
	if err != nil {
		return analysisErrorResponse(c, err, domain.MessageFailedAnalyzePurchase)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"receiptId":     res.ReceiptID,
		"imagePath":     res.ImagePath,
		"extractedText": res.ExtractedText,
		"ingredients":   res.Ingredients,
	})
}

func (h *purchaseHandler) AnalyzeReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingImageFile, nil)
	}

	res, err := h.purchaseService.AnalyzeReceipt(c.Context(), file)
	if err != nil {
		return analysisErrorResponse(c, err, domain.MessageFailedAnalyzeReceipt)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"extractedText": res.ExtractedText,
		"ingredients":   res.Ingredients,
	})
}

func (h *purchaseHandler) GetPurchaseReceipts(c *fiber.Ctx) error {
	receipts, err := h.purchaseService.GetPurchaseReceipts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"receipts": receipts,
	})
}

func (h *purchaseHandler) DeletePurchaseReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.purchaseService.DeletePurchaseReceipt(c.Context(), id); err != nil {
		// a malformed id cannot name an existing receipt
		if errors.Is(err, domain.ErrReceiptNotFound) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageReceiptNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteReceipt, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": domain.MessageReceiptDeleted,
	})
}

// analysisErrorResponse maps pipeline failures to their HTTP shape: input and
// OCR problems are the client's, everything past that stage is ours.
func analysisErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrMissingImageFile):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingImageFile, nil)
	case errors.Is(err, domain.ErrInvalidImageFormat):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	case errors.Is(err, domain.ErrNoTextFound):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoTextFound, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
	}
}

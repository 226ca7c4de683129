package fridge

import (
	"context"

	"github.com/doyoonear/motsulmoo/domain"
)

type (
	FridgeService interface {
		// GetFridgeItems lists the inventory, optionally filtered by one of
		// the fixed categories.
		GetFridgeItems(ctx context.Context, category string) ([]domain.FridgeItemResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) GetFridgeItems(ctx context.Context, category string) ([]domain.FridgeItemResponse, error) {
	if category != "" && !domain.IsValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}

	items, err := s.fridgeRepository.GetFridgeItems(ctx, category)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FridgeItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.FridgeItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Category:    item.Category,
			Amount:      item.Amount,
			Unit:        item.Unit,
			PurchasedAt: item.PurchasedAt,
			ExpiresAt:   item.ExpiresAt,
			CreatedAt:   item.CreatedAt,
		})
	}

	return response, nil
}

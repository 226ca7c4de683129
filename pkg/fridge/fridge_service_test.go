package fridge

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/entities"
)

type stubRepository struct {
	items []*entities.FridgeItem
}

func (r *stubRepository) GetFridgeItems(_ context.Context, category string) ([]*entities.FridgeItem, error) {
	if category == "" {
		return r.items, nil
	}
	var filtered []*entities.FridgeItem
	for _, item := range r.items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func TestGetFridgeItems(t *testing.T) {
	repo := &stubRepository{items: []*entities.FridgeItem{
		{ID: uuid.New(), Name: "양파", Category: "채소류", Amount: 200, Unit: "g"},
		{ID: uuid.New(), Name: "우유", Category: "유제품", Amount: 500, Unit: "ml"},
	}}
	svc := NewFridgeService(repo)

	items, err := svc.GetFridgeItems(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	vegetables, err := svc.GetFridgeItems(context.Background(), "채소류")
	require.NoError(t, err)
	require.Len(t, vegetables, 1)
	assert.Equal(t, "양파", vegetables[0].Name)
}

func TestGetFridgeItemsInvalidCategory(t *testing.T) {
	svc := NewFridgeService(&stubRepository{})

	_, err := svc.GetFridgeItems(context.Background(), "외계식품")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

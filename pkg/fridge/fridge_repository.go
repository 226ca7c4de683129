package fridge

import (
	"context"

	"gorm.io/gorm"

	"github.com/doyoonear/motsulmoo/entities"
)

type (
	FridgeRepository interface {
		GetFridgeItems(ctx context.Context, category string) ([]*entities.FridgeItem, error)
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) GetFridgeItems(ctx context.Context, category string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem

	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

package purchase

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/doyoonear/motsulmoo/entities"
)

type (
	PurchaseRepository interface {
		// CreateReceiptWithItems persists the receipt and its fridge items as
		// one logical unit; a failed item insert rolls the receipt back.
		CreateReceiptWithItems(ctx context.Context, receipt *entities.PurchaseReceipt) error
		ListReceipts(ctx context.Context) ([]*entities.PurchaseReceipt, error)
		GetReceiptByID(ctx context.Context, id string) (*entities.PurchaseReceipt, error)
		DeleteReceipt(ctx context.Context, id string) error
	}

	purchaseRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreateReceiptWithItems(ctx context.Context, receipt *entities.PurchaseReceipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := receipt.FridgeItems
		receipt.FridgeItems = nil

		if err := tx.Create(receipt).Error; err != nil {
			return fmt.Errorf("create purchase receipt: %w", err)
		}

		for _, item := range items {
			item.PurchaseReceiptID = &receipt.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("create fridge items for receipt %s: %w", receipt.ID, err)
			}
		}

		receipt.FridgeItems = items
		return nil
	})
}

func (r *purchaseRepository) ListReceipts(ctx context.Context) ([]*entities.PurchaseReceipt, error) {
	var receipts []*entities.PurchaseReceipt
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *purchaseRepository) GetReceiptByID(ctx context.Context, id string) (*entities.PurchaseReceipt, error) {
	var receipt entities.PurchaseReceipt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *purchaseRepository) DeleteReceipt(ctx context.Context, id string) error {
	// fridge items go with the receipt via the FK's ON DELETE CASCADE
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PurchaseReceipt{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

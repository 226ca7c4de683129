package entities

import (
	"time"

	"github.com/google/uuid"
)

// FridgeItem is one ingredient derived from a purchase receipt or a recipe.
// Category and Unit are constrained to domain.IngredientCategories and
// domain.IngredientUnits before anything reaches this table.
type FridgeItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Unit        string     `json:"unit"` // "g" or "ml"
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	PurchaseReceiptID *uuid.UUID `gorm:"type:uuid" json:"purchase_receipt_id,omitempty"`
	RecipeID          *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"`

	PurchaseReceipt *PurchaseReceipt `gorm:"foreignKey:PurchaseReceiptID" json:"-"`
	Timestamp
}

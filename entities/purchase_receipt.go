package entities

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseReceipt is one receipt-upload event. ImagePath is the object key in
// the private bucket, never a browsable URL; a signed URL is derived on read.
type PurchaseReceipt struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ImagePath    string     `gorm:"type:text" json:"image_path"`
	OcrRawText   string     `gorm:"type:text" json:"ocr_raw_text"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	StoreName    *string    `json:"store_name,omitempty"`

	FridgeItems []*FridgeItem `gorm:"foreignKey:PurchaseReceiptID;constraint:OnDelete:CASCADE" json:"fridge_items,omitempty"`
	Timestamp
}

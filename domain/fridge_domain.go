package domain

import "time"

var (
	MessageFailedGetFridgeItems  = "냉장고 재료 조회 중 오류가 발생했습니다."
	MessageInvalidCategoryFilter = "유효하지 않은 카테고리입니다."
)

type FridgeItemResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Unit        string     `json:"unit"`
	PurchasedAt *time.Time `json:"purchasedAt"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

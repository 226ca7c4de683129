package domain

import (
	"errors"
	"time"
)

var (
	MessageNoTextFound           = "이미지에서 텍스트를 추출할 수 없습니다."
	MessageFailedAnalyzePurchase = "구매내역 분석 중 오류가 발생했습니다."
	MessageFailedAnalyzeReceipt  = "이미지 분석 중 오류가 발생했습니다."
	MessageFailedGetReceipts     = "구매내역 조회 중 오류가 발생했습니다."
	MessageReceiptNotFound       = "구매내역을 찾을 수 없습니다."
	MessageFailedDeleteReceipt   = "구매내역 삭제 중 오류가 발생했습니다."
	MessageReceiptDeleted        = "구매내역이 삭제되었습니다."

	ErrNoTextFound     = errors.New("no text found in image")
	ErrAnalysisParse   = errors.New("failed to parse analysis response")
	ErrAnalysisFailed  = errors.New("analyzer returned no content")
	ErrReceiptNotFound = errors.New("purchase receipt not found")
)

type (
	AnalyzePurchaseResponse struct {
		ReceiptID     string               `json:"receiptId"`
		ImagePath     string               `json:"imagePath"`
		ExtractedText string               `json:"extractedText"`
		Ingredients   []AnalyzedIngredient `json:"ingredients"`
	}

	// AnalyzeReceiptResponse is the analysis-only variant; nothing is persisted.
	AnalyzeReceiptResponse struct {
		ExtractedText string               `json:"extractedText"`
		Ingredients   []AnalyzedIngredient `json:"ingredients"`
	}

	PurchaseReceiptResponse struct {
		ID           string     `json:"id"`
		ImageURL     string     `json:"imageUrl"`
		SignedURL    *string    `json:"signedUrl"`
		PurchaseDate *time.Time `json:"purchaseDate"`
		StoreName    *string    `json:"storeName"`
		CreatedAt    time.Time  `json:"createdAt"`
	}
)

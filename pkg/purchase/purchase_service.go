package purchase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/entities"
	"github.com/doyoonear/motsulmoo/internal/utils/storage"
	"github.com/doyoonear/motsulmoo/pkg/analyzer"
	"github.com/doyoonear/motsulmoo/pkg/ocr"
)

const signedURLExpiry = time.Hour

type (
	PurchaseService interface {
		// AnalyzePurchase runs the full ingestion pipeline: store blob,
		// extract text, extract ingredients, persist receipt + items.
		AnalyzePurchase(ctx context.Context, file *multipart.FileHeader) (domain.AnalyzePurchaseResponse, error)
		// AnalyzeReceipt is the analysis-only variant; no blob, no rows.
		AnalyzeReceipt(ctx context.Context, file *multipart.FileHeader) (domain.AnalyzeReceiptResponse, error)
		GetPurchaseReceipts(ctx context.Context) ([]domain.PurchaseReceiptResponse, error)
		DeletePurchaseReceipt(ctx context.Context, id string) error
	}

	purchaseService struct {
		purchaseRepository PurchaseRepository
		s3                 storage.AwsS3
		textExtractor      ocr.TextExtractor
		analyzer           analyzer.Analyzer
	}
)

func NewPurchaseService(
	purchaseRepository PurchaseRepository,
	s3 storage.AwsS3,
	textExtractor ocr.TextExtractor,
	textAnalyzer analyzer.Analyzer,
) PurchaseService {
	return &purchaseService{
		purchaseRepository: purchaseRepository,
		s3:                 s3,
		textExtractor:      textExtractor,
		analyzer:           textAnalyzer,
	}
}

func (s *purchaseService) AnalyzePurchase(ctx context.Context, file *multipart.FileHeader) (domain.AnalyzePurchaseResponse, error) {
	if file == nil {
		return domain.AnalyzePurchaseResponse{}, domain.ErrMissingImageFile
	}

	data, err := readMultipartFile(file)
	if err != nil {
		return domain.AnalyzePurchaseResponse{}, err
	}

	imagePath, err := s.s3.UploadFile(data, file.Filename, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.AnalyzePurchaseResponse{}, err
	}

	base64Image := base64.StdEncoding.EncodeToString(data)
	extractedText, err := s.textExtractor.ExtractText(ctx, base64Image)
	if err != nil {
		s.discardBlob(imagePath)
		return domain.AnalyzePurchaseResponse{}, err
	}

	ingredients, err := s.analyzer.ExtractIngredients(ctx, extractedText)
	if err != nil {
		s.discardBlob(imagePath)
		return domain.AnalyzePurchaseResponse{}, err
	}

	receipt := &entities.PurchaseReceipt{
		ID:         uuid.New(),
		ImagePath:  imagePath,
		OcrRawText: extractedText,
	}
	for _, ingredient := range ingredients {
		receipt.FridgeItems = append(receipt.FridgeItems, &entities.FridgeItem{
			ID:          uuid.New(),
			Name:        ingredient.Name,
			Category:    ingredient.Category,
			Amount:      ingredient.Amount,
			Unit:        ingredient.Unit,
			PurchasedAt: receipt.PurchaseDate,
		})
	}

	if err := s.purchaseRepository.CreateReceiptWithItems(ctx, receipt); err != nil {
		s.discardBlob(imagePath)
		return domain.AnalyzePurchaseResponse{}, fmt.Errorf("failed to persist purchase receipt: %w", err)
	}

	return domain.AnalyzePurchaseResponse{
		ReceiptID:     receipt.ID.String(),
		ImagePath:     imagePath,
		ExtractedText: extractedText,
		Ingredients:   ingredients,
	}, nil
}

func (s *purchaseService) AnalyzeReceipt(ctx context.Context, file *multipart.FileHeader) (domain.AnalyzeReceiptResponse, error) {
	if file == nil {
		return domain.AnalyzeReceiptResponse{}, domain.ErrMissingImageFile
	}

	data, err := readMultipartFile(file)
	if err != nil {
		return domain.AnalyzeReceiptResponse{}, err
	}

	base64Image := base64.StdEncoding.EncodeToString(data)
	extractedText, err := s.textExtractor.ExtractText(ctx, base64Image)
	if err != nil {
		return domain.AnalyzeReceiptResponse{}, err
	}

	ingredients, err := s.analyzer.ExtractIngredients(ctx, extractedText)
	if err != nil {
		return domain.AnalyzeReceiptResponse{}, err
	}

	return domain.AnalyzeReceiptResponse{
		ExtractedText: extractedText,
		Ingredients:   ingredients,
	}, nil
}

func (s *purchaseService) GetPurchaseReceipts(ctx context.Context) ([]domain.PurchaseReceiptResponse, error) {
	receipts, err := s.purchaseRepository.ListReceipts(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PurchaseReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		var signedURL *string
		if url, err := s.s3.PresignURL(receipt.ImagePath, signedURLExpiry); err != nil {
			// degrade to a null URL instead of dropping the item
			slog.Warn("signed URL generation failed",
				"image_path", receipt.ImagePath,
				"error", err,
			)
		} else {
			signedURL = &url
		}

		response = append(response, domain.PurchaseReceiptResponse{
			ID:           receipt.ID.String(),
			ImageURL:     receipt.ImagePath,
			SignedURL:    signedURL,
			PurchaseDate: receipt.PurchaseDate,
			StoreName:    receipt.StoreName,
			CreatedAt:    receipt.CreatedAt,
		})
	}

	return response, nil
}

func (s *purchaseService) DeletePurchaseReceipt(ctx context.Context, id string) error {
	// reject malformed ids before they reach the uuid column
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	receipt, err := s.purchaseRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiptNotFound
		}
		return err
	}

	// best effort: a failed blob delete never blocks the record delete
	if err := s.s3.DeleteFile(receipt.ImagePath); err != nil {
		slog.Warn("failed to delete receipt image from storage",
			"image_path", receipt.ImagePath,
			"error", err,
		)
	}

	if err := s.purchaseRepository.DeleteReceipt(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiptNotFound
		}
		return err
	}

	return nil
}

// discardBlob compensates a stored blob when a later pipeline stage fails, so
// an aborted request leaves neither a row nor an orphaned object behind.
func (s *purchaseService) discardBlob(imagePath string) {
	if err := s.s3.DeleteFile(imagePath); err != nil {
		slog.Warn("failed to delete orphaned blob", "image_path", imagePath, "error", err)
	}
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

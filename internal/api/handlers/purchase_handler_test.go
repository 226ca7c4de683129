package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doyoonear/motsulmoo/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPurchaseService struct {
	analyzePurchaseRes domain.AnalyzePurchaseResponse
	analyzePurchaseErr error
	analyzeReceiptRes  domain.AnalyzeReceiptResponse
	analyzeReceiptErr  error
	receipts           []domain.PurchaseReceiptResponse
	listErr            error
	deleteErr          error
	deletedID          string
}

func (s *stubPurchaseService) AnalyzePurchase(_ context.Context, _ *multipart.FileHeader) (domain.AnalyzePurchaseResponse, error) {
	return s.analyzePurchaseRes, s.analyzePurchaseErr
}

func (s *stubPurchaseService) AnalyzeReceipt(_ context.Context, _ *multipart.FileHeader) (domain.AnalyzeReceiptResponse, error) {
	return s.analyzeReceiptRes, s.analyzeReceiptErr
}

func (s *stubPurchaseService) GetPurchaseReceipts(_ context.Context) ([]domain.PurchaseReceiptResponse, error) {
	return s.receipts, s.listErr
}

func (s *stubPurchaseService) DeletePurchaseReceipt(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = id
	return nil
}

func newTestApp(svc *stubPurchaseService) *fiber.App {
	app := fiber.New()
	handler := NewPurchaseHandler(svc)
	app.Post("/api/analyze-purchase", handler.AnalyzePurchase)
	app.Post("/api/analyze-receipt", handler.AnalyzeReceipt)
	app.Get("/api/purchase-receipts", handler.GetPurchaseReceipts)
	app.Delete("/api/purchase-receipts/:id", handler.DeletePurchaseReceipt)
	return app
}

func multipartImageRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "receipt.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAnalyzePurchase_Success(t *testing.T) {
	svc := &stubPurchaseService{
		analyzePurchaseRes: domain.AnalyzePurchaseResponse{
			ReceiptID:     "7c7a9cf0-0f2d-4b52-a9ee-3f1f2f4b8a11",
			ImagePath:     "receipts/1700000000000-abc.jpg",
			ExtractedText: "양파 1개 2000원",
			Ingredients: []domain.AnalyzedIngredient{
				{Name: "양파", Amount: 200, Unit: "g", Category: "채소류"},
			},
		},
	}
	app := newTestApp(svc)

	res, err := app.Test(multipartImageRequest(t, "/api/analyze-purchase"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "7c7a9cf0-0f2d-4b52-a9ee-3f1f2f4b8a11", body["receiptId"])
	assert.Equal(t, "양파 1개 2000원", body["extractedText"])
	ingredients, ok := body["ingredients"].([]any)
	require.True(t, ok)
	require.Len(t, ingredients, 1)
	first := ingredients[0].(map[string]any)
	assert.Equal(t, "양파", first["name"])
	assert.Equal(t, "채소류", first["category"])
}

func TestAnalyzePurchase_MissingFile(t *testing.T) {
	app := newTestApp(&stubPurchaseService{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-purchase", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageMissingImageFile, body["error"])
	assert.NotContains(t, body, "details")
}

func TestAnalyzePurchase_NoTextFound(t *testing.T) {
	svc := &stubPurchaseService{analyzePurchaseErr: domain.ErrNoTextFound}
	app := newTestApp(svc)

	res, err := app.Test(multipartImageRequest(t, "/api/analyze-purchase"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageNoTextFound, body["error"])
}

func TestAnalyzePurchase_ParseFailure(t *testing.T) {
	svc := &stubPurchaseService{analyzePurchaseErr: domain.ErrAnalysisParse}
	app := newTestApp(svc)

	res, err := app.Test(multipartImageRequest(t, "/api/analyze-purchase"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageFailedAnalyzePurchase, body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestAnalyzeReceipt_Success(t *testing.T) {
	svc := &stubPurchaseService{
		analyzeReceiptRes: domain.AnalyzeReceiptResponse{
			ExtractedText: "두부 1모 1500원",
			Ingredients: []domain.AnalyzedIngredient{
				{Name: "두부", Amount: 300, Unit: "g", Category: "달걀·가공단백류"},
			},
		},
	}
	app := newTestApp(svc)

	res, err := app.Test(multipartImageRequest(t, "/api/analyze-receipt"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "두부 1모 1500원", body["extractedText"])
	assert.NotContains(t, body, "receiptId")
}

func TestGetPurchaseReceipts_SignedURLMayBeNull(t *testing.T) {
	signed := "https://bucket.s3.amazonaws.com/receipts/a.jpg?X-Amz-Signature=abc"
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubPurchaseService{
		receipts: []domain.PurchaseReceiptResponse{
			{ID: "id-newer", ImageURL: "receipts/a.jpg", SignedURL: &signed, CreatedAt: createdAt},
			{ID: "id-older", ImageURL: "receipts/b.jpg", SignedURL: nil, CreatedAt: createdAt.Add(-time.Hour)},
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/purchase-receipts", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	receipts, ok := body["receipts"].([]any)
	require.True(t, ok)
	require.Len(t, receipts, 2)

	newer := receipts[0].(map[string]any)
	assert.Equal(t, "id-newer", newer["id"])
	assert.Equal(t, signed, newer["signedUrl"])

	older := receipts[1].(map[string]any)
	assert.Equal(t, "id-older", older["id"])
	assert.Nil(t, older["signedUrl"])
}

func TestDeletePurchaseReceipt_Success(t *testing.T) {
	svc := &stubPurchaseService{}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/purchase-receipts/some-id", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, domain.MessageReceiptDeleted, body["message"])
	assert.Equal(t, "some-id", svc.deletedID)
}

func TestDeletePurchaseReceipt_NotFound(t *testing.T) {
	svc := &stubPurchaseService{deleteErr: domain.ErrReceiptNotFound}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/purchase-receipts/unknown", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageReceiptNotFound, body["error"])
	assert.NotContains(t, body, "details")
}

func TestDeletePurchaseReceipt_MalformedID(t *testing.T) {
	svc := &stubPurchaseService{deleteErr: domain.ErrParseUUID}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/purchase-receipts/abc", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageReceiptNotFound, body["error"])
	assert.NotContains(t, body, "details")
}

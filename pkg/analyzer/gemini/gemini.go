package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/pkg/analyzer"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client is the Gemini-backed analyzer.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ExtractIngredients(ctx context.Context, extractedText string) ([]domain.AnalyzedIngredient, error) {
	responseText, err := c.generateContent(ctx, analyzer.IngredientPrompt(extractedText))
	if err != nil {
		return nil, err
	}
	return analyzer.ParseIngredients(responseText)
}

func (c *Client) ExtractRecipe(ctx context.Context, extractedText string) (*domain.AnalyzedRecipe, error) {
	responseText, err := c.generateContent(ctx, analyzer.RecipePrompt(extractedText))
	if err != nil {
		return nil, err
	}
	return analyzer.ParseRecipe(responseText)
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrAnalysisFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyoonear/motsulmoo/domain"
)

const defaultVisionURL = "https://vision.googleapis.com/v1/images:annotate"

type (
	visionRequest struct {
		Requests []visionAnnotateRequest `json:"requests"`
	}

	visionAnnotateRequest struct {
		Image    visionImage     `json:"image"`
		Features []visionFeature `json:"features"`
	}

	visionImage struct {
		Content string `json:"content"`
	}

	visionFeature struct {
		Type       string `json:"type"`
		MaxResults int    `json:"maxResults"`
	}

	visionResponse struct {
		Responses []struct {
			Error *struct {
				Message string `json:"message"`
			} `json:"error,omitempty"`
			FullTextAnnotation *struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation,omitempty"`
		} `json:"responses"`
	}
)

// GoogleVision calls the Google Cloud Vision images:annotate endpoint with
// TEXT_DETECTION and returns exactly one document's full text.
type GoogleVision struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleVision(apiKey string) *GoogleVision {
	return &GoogleVision{
		apiKey:     apiKey,
		baseURL:    defaultVisionURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GoogleVision) ExtractText(ctx context.Context, imageBase64 string) (string, error) {
	body := visionRequest{
		Requests: []visionAnnotateRequest{
			{
				Image: visionImage{Content: imageBase64},
				Features: []visionFeature{
					{Type: "TEXT_DETECTION", MaxResults: 1},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: vision API error: %s - %s", domain.ErrNoTextFound, resp.Status, string(bodyBytes))
	}

	var visionResp visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&visionResp); err != nil {
		return "", err
	}

	if len(visionResp.Responses) == 0 {
		return "", domain.ErrNoTextFound
	}
	if visionResp.Responses[0].Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNoTextFound, visionResp.Responses[0].Error.Message)
	}

	var extractedText string
	if visionResp.Responses[0].FullTextAnnotation != nil {
		extractedText = visionResp.Responses[0].FullTextAnnotation.Text
	}

	// no text found is a terminal failure for the pipeline, not an empty success
	if extractedText == "" {
		return "", domain.ErrNoTextFound
	}

	return extractedText, nil
}

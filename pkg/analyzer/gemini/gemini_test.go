package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doyoonear/motsulmoo/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key", "gemini-2.0-flash-exp")
	c.baseURL = server.URL
	return c
}

func geminiAnswer(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
			},
		},
	}
}

func TestExtractIngredients(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Contents[0].Parts[0].Text

		answer := "```json\n[{\"name\":\"양파\",\"amount\":200,\"unit\":\"g\",\"category\":\"채소류\"}]\n```"
		_ = json.NewEncoder(w).Encode(geminiAnswer(answer))
	})

	ingredients, err := c.ExtractIngredients(context.Background(), "양파 1개 2000원")
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "양파", ingredients[0].Name)
	assert.Equal(t, float64(200), ingredients[0].Amount)

	assert.True(t, strings.Contains(prompt, "양파 1개 2000원"), "prompt must embed the extracted text")
	assert.True(t, strings.Contains(prompt, "채소류"), "prompt must embed the category list")
}

func TestExtractIngredientsMalformedAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiAnswer("재료가 없습니다"))
	})

	_, err := c.ExtractIngredients(context.Background(), "텍스트")
	assert.ErrorIs(t, err, domain.ErrAnalysisParse)
}

func TestExtractRecipeNull(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiAnswer("null"))
	})

	recipe, err := c.ExtractRecipe(context.Background(), "요리와 무관한 텍스트")
	require.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestGenerateContentNoCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	_, err := c.ExtractIngredients(context.Background(), "텍스트")
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestGenerateContentHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.ExtractIngredients(context.Background(), "텍스트")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API error")
}

package claude

import (
	"context"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/pkg/analyzer"
)

// Client is the Anthropic-backed analyzer, selected with
// ANALYZER_BACKEND=claude. It sends the same prompts as the Gemini backend
// and shares its response pipeline.
type Client struct {
	client *anthropic.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (c *Client) ExtractIngredients(ctx context.Context, extractedText string) ([]domain.AnalyzedIngredient, error) {
	responseText, err := c.createMessage(ctx, analyzer.IngredientPrompt(extractedText))
	if err != nil {
		return nil, err
	}
	return analyzer.ParseIngredients(responseText)
}

func (c *Client) ExtractRecipe(ctx context.Context, extractedText string) (*domain.AnalyzedRecipe, error) {
	responseText, err := c.createMessage(ctx, analyzer.RecipePrompt(extractedText))
	if err != nil {
		return nil, err
	}
	return analyzer.ParseRecipe(responseText)
}

func (c *Client) createMessage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		MaxTokens: 2048,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Content) == 0 {
		return "", domain.ErrAnalysisFailed
	}

	return resp.Content[0].GetText(), nil
}

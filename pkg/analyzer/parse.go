package analyzer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/doyoonear/motsulmoo/domain"
)

// StripCodeFence removes markdown code-fence markers (labeled and unlabeled)
// that providers wrap JSON answers in.
func StripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.ReplaceAll(cleaned, "```json\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	}

	return strings.TrimSpace(cleaned)
}

// ParseIngredients parses the cleaned provider response into ingredient
// candidates. Malformed JSON fails with domain.ErrAnalysisParse; there is no
// partial recovery. Candidates outside the category/unit enumerations or with
// a non-positive amount are dropped with a warning, never persisted as-is.
func ParseIngredients(raw string) ([]domain.AnalyzedIngredient, error) {
	cleaned := StripCodeFence(raw)

	var candidates []domain.AnalyzedIngredient
	if err := json.Unmarshal([]byte(cleaned), &candidates); err != nil {
		return nil, fmt.Errorf("%w: 재료 분석 결과 파싱 실패: %s", domain.ErrAnalysisParse, err.Error())
	}

	ingredients := make([]domain.AnalyzedIngredient, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			slog.Warn("dropping ingredient candidate",
				"name", candidate.Name,
				"category", candidate.Category,
				"unit", candidate.Unit,
				"error", err,
			)
			continue
		}
		ingredients = append(ingredients, candidate)
	}

	return ingredients, nil
}

// ParseRecipe parses the cleaned provider response into a recipe. A JSON
// null answer means "no recipe detected" and yields (nil, nil).
func ParseRecipe(raw string) (*domain.AnalyzedRecipe, error) {
	cleaned := StripCodeFence(raw)

	var recipe *domain.AnalyzedRecipe
	if err := json.Unmarshal([]byte(cleaned), &recipe); err != nil {
		return nil, fmt.Errorf("%w: 레시피 분석 결과 파싱 실패: %s", domain.ErrAnalysisParse, err.Error())
	}

	return recipe, nil
}

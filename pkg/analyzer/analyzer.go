package analyzer

import (
	"context"
	"fmt"

	"github.com/doyoonear/motsulmoo/domain"
)

// Analyzer turns raw OCR text into typed records via a generative-text
// provider. Implementations request JSON-only output and run the shared
// response pipeline in parse.go.
type Analyzer interface {
	// ExtractIngredients returns the validated ingredient candidates found in
	// the text. An empty slice is a valid success.
	ExtractIngredients(ctx context.Context, extractedText string) ([]domain.AnalyzedIngredient, error)
	// ExtractRecipe returns (nil, nil) when the provider answers null,
	// meaning no recipe was detected.
	ExtractRecipe(ctx context.Context, extractedText string) (*domain.AnalyzedRecipe, error)
}

const ingredientPromptTemplate = `
다음은 구매내역에서 추출한 텍스트입니다. 이 텍스트에서 식재료만 추출하고, 각 재료에 대해 다음 정보를 JSON 배열 형태로 반환해주세요.

추출한 텍스트:
%s

각 재료에 대해 다음 형식으로 반환:
[
  {
    "name": "재료 이름",
    "amount": 용량(숫자만),
    "unit": "g" 또는 "ml",
    "category": "카테고리"
  }
]

카테고리는 다음 중 하나여야 합니다:
- 채소류
- 육류
- 해산물
- 버섯류
- 달걀·가공단백류
- 곡물·면류
- 유제품
- 가공식품
- 조미료·양념류
- 기타·간식류

중요:
1. 식재료가 아닌 항목(총액, 날짜, 매장명 등)은 제외
2. 용량이 명시되지 않은 경우 일반적인 용량을 추정 (예: 양파 1개 = 200g)
3. g 또는 ml로 통일
4. JSON 배열만 반환하고 다른 텍스트는 포함하지 마세요
5. 만약 식재료를 찾을 수 없다면 빈 배열 []을 반환하세요
`

const recipePromptTemplate = `
다음은 레시피 이미지에서 추출한 텍스트입니다. 이 텍스트에서 레시피 정보를 추출하고, 다음 정보를 JSON 형태로 반환해주세요.

추출한 텍스트:
%s

다음 형식으로 반환:
{
  "name": "요리 이름",
  "cookingTime": "소요 시간 (예: 30min, 1h, 1h 10min)",
  "mainIngredients": ["메인 재료1", "메인 재료2", "메인 재료3"],
  "additionalIngredients": ["추가 재료1", "추가 재료2"]
}

중요:
1. 요리 이름은 한글로 추출
2. 소요 시간은 "30min", "1h", "1h 10min" 형태로 표현
3. 메인 재료는 가장 중요한 3-5개 재료
4. 추가 재료는 양념, 부재료 등
5. JSON만 반환하고 다른 텍스트는 포함하지 마세요
6. 만약 레시피 정보를 찾을 수 없다면 null을 반환하세요
`

func IngredientPrompt(extractedText string) string {
	return fmt.Sprintf(ingredientPromptTemplate, extractedText)
}

func RecipePrompt(extractedText string) string {
	return fmt.Sprintf(recipePromptTemplate, extractedText)
}

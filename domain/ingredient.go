package domain

import "errors"

// IngredientCategories is the closed set of categories an ingredient may
// carry. The analyzer prompt embeds this list and the persistence layer
// refuses anything outside of it.
var IngredientCategories = []string{
	"채소류",
	"육류",
	"해산물",
	"버섯류",
	"달걀·가공단백류",
	"곡물·면류",
	"유제품",
	"가공식품",
	"조미료·양념류",
	"기타·간식류",
}

// IngredientUnits is the closed set of units: mass or volume.
var IngredientUnits = []string{"g", "ml"}

var (
	ErrInvalidCategory = errors.New("ingredient category is not in the allowed set")
	ErrInvalidUnit     = errors.New("ingredient unit must be g or ml")
	ErrInvalidAmount   = errors.New("ingredient amount must be positive")
)

// AnalyzedIngredient is the wire shape consumed from the AI provider and
// re-emitted to clients.
type AnalyzedIngredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

func IsValidCategory(category string) bool {
	for _, c := range IngredientCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidUnit(unit string) bool {
	for _, u := range IngredientUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Validate guards the closed enumerations and the positive-amount rule.
// Provider output is untrusted input.
func (i AnalyzedIngredient) Validate() error {
	if !IsValidCategory(i.Category) {
		return ErrInvalidCategory
	}
	if !IsValidUnit(i.Unit) {
		return ErrInvalidUnit
	}
	if i.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

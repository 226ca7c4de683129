package entities

import (
	"time"

	"github.com/google/uuid"
)

// Recipe stores its ordered ingredient and instruction lists as JSON text
// columns; ordering is preserved by the encoded arrays.
type Recipe struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                  string    `json:"name"`
	CookingTime           string    `json:"cooking_time"` // free form, e.g. "30min", "1h 10min"
	MainIngredients       string    `gorm:"type:text" json:"main_ingredients"`
	AdditionalIngredients string    `gorm:"type:text" json:"additional_ingredients"`
	Seasonings            string    `gorm:"type:text" json:"seasonings"`
	Instructions          string    `gorm:"type:text" json:"instructions"`
	ImagePath             string    `gorm:"type:text" json:"image_path,omitempty"`

	Variants []*RecipeVariant `gorm:"foreignKey:ParentRecipeID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	Timestamp
}

type RecipeVariant struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                string    `json:"name"`
	ParentRecipeID      uuid.UUID `gorm:"type:uuid" json:"parent_recipe_id"`
	ModifiedIngredients string    `gorm:"type:text" json:"modified_ingredients"`
	CreatedAt           time.Time `gorm:"type:timestamp" json:"created_at"`

	ParentRecipe *Recipe `gorm:"foreignKey:ParentRecipeID" json:"-"`
}

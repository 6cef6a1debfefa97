package models

// RecipePart: one material line item of a recipe.
type RecipePart struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RecipeID    string  `gorm:"size:36;index;not null" json:"recipe_id"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	CostPerUnit float64 `gorm:"not null" json:"cost_per_unit"`
	Position    int     `gorm:"not null;default:0" json:"position"` // list order within the recipe
}

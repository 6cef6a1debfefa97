package models

// RecipeLabor: one labor line item of a recipe.
type RecipeLabor struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RecipeID    string  `gorm:"size:36;index;not null" json:"recipe_id"`
	Type        string  `gorm:"size:100;not null" json:"type"`
	CostPerHour float64 `gorm:"not null" json:"cost_per_hour"`
	HoursNeeded float64 `gorm:"not null" json:"hours_needed"`
	Position    int     `gorm:"not null;default:0" json:"position"` // list order within the recipe
}

func (RecipeLabor) TableName() string {
	return "recipe_labor"
}

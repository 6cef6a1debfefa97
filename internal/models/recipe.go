package models

import "time"

// Recipe: a bill-of-materials record for one manufacturable item.
// Dimension fields are flattened into columns; the API re-nests them.
type Recipe struct {
	ID                string  `gorm:"primaryKey;size:36" json:"id"`
	Name              string  `gorm:"size:200;not null" json:"name"`
	Weight            float64 `json:"weight"`
	Length            float64 `gorm:"column:dimension_length" json:"length"`
	Width             float64 `gorm:"column:dimension_width" json:"width"`
	Height            float64 `gorm:"column:dimension_height" json:"height"`
	DimensionUnit     string  `gorm:"column:dimension_unit;size:20" json:"dimension_unit"`
	YieldPercentage   float64 `json:"yield_percentage"` // 0-100, stored only
	WasteFactor       float64 `json:"waste_factor"`     // [0,1), cost is divided by (1 - waste_factor)
	UnitOfMeasure     string  `gorm:"size:50" json:"unit_of_measure"`
	InventoryLocation string  `gorm:"size:100" json:"inventory_location"`

	Parts []RecipePart  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"parts"`
	Labor []RecipeLabor `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"labor"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package costing

import (
	"errors"

	"recipecost-backend/internal/models"
)

// Currency is fixed; there is no conversion layer.
const Currency = "USD"

const defaultUnitOfMeasure = "piece"

var ErrNoRecipe = errors.New("a recipe is required to compute cost")

type CostSummary struct {
	Subtotal      float64 `json:"subtotal"`
	WasteFactor   float64 `json:"waste_factor"`
	WasteAmount   float64 `json:"waste_amount"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	UnitOfMeasure string  `json:"unit_of_measure"`
}

type CostBreakdown struct {
	RecipeID    string      `json:"recipe_id"`
	RecipeName  string      `json:"recipe_name"`
	CostSummary CostSummary `json:"cost_summary"`
}

// RecipeCostLine: per-recipe display row inside the fleet summary.
type RecipeCostLine struct {
	RecipeID   string  `json:"recipe_id"`
	RecipeName string  `json:"recipe_name"`
	PartsCost  float64 `json:"parts_cost"`
	LaborCost  float64 `json:"labor_cost"`
	Total      float64 `json:"total"`
}

type FleetSummary struct {
	TotalRecipes         int              `json:"total_recipes"`
	TotalPartsCost       float64          `json:"total_parts_cost"`
	TotalLaborCost       float64          `json:"total_labor_cost"`
	GrandTotal           float64          `json:"grand_total"`
	AverageCostPerRecipe float64          `json:"average_cost_per_recipe"`
	Currency             string           `json:"currency"`
	Recipes              []RecipeCostLine `json:"recipes"`
}

func PartsCost(parts []models.RecipePart) float64 {
	var total float64
	for _, p := range parts {
		total += p.Quantity * p.CostPerUnit
	}
	return total
}

func LaborCost(labor []models.RecipeLabor) float64 {
	var total float64
	for _, l := range labor {
		total += l.HoursNeeded * l.CostPerHour
	}
	return total
}

// ComputeCost derives the cost breakdown of a single recipe. The recipe is
// trusted to carry numeric parts and labor; only its presence is checked.
// No rounding is applied, results carry full floating-point precision.
func ComputeCost(recipe *models.Recipe) (CostBreakdown, error) {
	if recipe == nil {
		return CostBreakdown{}, ErrNoRecipe
	}

	subtotal := PartsCost(recipe.Parts) + LaborCost(recipe.Labor)

	// waste_factor is strictly below 1, so the divisor never reaches zero.
	wasteFactor := recipe.WasteFactor
	total := subtotal / (1 - wasteFactor)
	wasteAmount := total - subtotal

	unit := recipe.UnitOfMeasure
	if unit == "" {
		unit = defaultUnitOfMeasure
	}

	return CostBreakdown{
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		CostSummary: CostSummary{
			Subtotal:      subtotal,
			WasteFactor:   wasteFactor,
			WasteAmount:   wasteAmount,
			Total:         total,
			Currency:      Currency,
			UnitOfMeasure: unit,
		},
	}, nil
}

// ComputeFleetSummary aggregates cost across all recipes. Parts and labor
// costs are recomputed per recipe for the display rows.
func ComputeFleetSummary(recipes []models.Recipe) FleetSummary {
	summary := FleetSummary{
		TotalRecipes: len(recipes),
		Currency:     Currency,
		Recipes:      make([]RecipeCostLine, 0, len(recipes)),
	}

	for i := range recipes {
		recipe := &recipes[i]
		breakdown, err := ComputeCost(recipe)
		if err != nil {
			continue
		}

		partsCost := PartsCost(recipe.Parts)
		laborCost := LaborCost(recipe.Labor)

		summary.TotalPartsCost += partsCost
		summary.TotalLaborCost += laborCost
		summary.GrandTotal += breakdown.CostSummary.Total
		summary.Recipes = append(summary.Recipes, RecipeCostLine{
			RecipeID:   recipe.ID,
			RecipeName: recipe.Name,
			PartsCost:  partsCost,
			LaborCost:  laborCost,
			Total:      breakdown.CostSummary.Total,
		})
	}

	if summary.TotalRecipes > 0 {
		summary.AverageCostPerRecipe = summary.GrandTotal / float64(summary.TotalRecipes)
	}

	return summary
}

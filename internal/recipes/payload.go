package recipes

import (
	"strings"

	"github.com/google/uuid"

	"recipecost-backend/internal/models"
)

// Payload shaping: validated JSON payloads are mapped onto typed models here,
// and optional-field defaults are applied exactly once, at this boundary.

func recipeFromPayload(payload map[string]any) models.Recipe {
	recipe := models.Recipe{
		ID:                uuid.NewString(),
		Name:              stringValue(payload["name"]),
		Weight:            numberValue(payload["weight"]),
		YieldPercentage:   numberValue(payload["yield_percentage"]),
		WasteFactor:       numberValue(payload["waste_factor"]),
		UnitOfMeasure:     unitOrDefault(payload["unit_of_measure"]),
		InventoryLocation: stringValue(payload["inventory_location"]),
	}
	applyDimensions(&recipe, payload["dimensions"])
	recipe.Parts = partsFromPayload(recipe.ID, payload["parts"])
	recipe.Labor = laborFromPayload(recipe.ID, payload["labor"])
	return recipe
}

// applyRecipeUpdate shallow-merges the present fields of a partial payload
// over the existing recipe. Dimensions are replaced wholesale, never merged
// per axis. Parts and labor are rebuilt only when explicitly supplied.
func applyRecipeUpdate(recipe *models.Recipe, payload map[string]any) (replaceParts, replaceLabor bool) {
	if v, ok := payload["name"]; ok {
		recipe.Name = stringValue(v)
	}
	if v, ok := payload["weight"]; ok {
		recipe.Weight = numberValue(v)
	}
	if v, ok := payload["dimensions"]; ok {
		applyDimensions(recipe, v)
	}
	if v, ok := payload["yield_percentage"]; ok {
		recipe.YieldPercentage = numberValue(v)
	}
	if v, ok := payload["waste_factor"]; ok {
		recipe.WasteFactor = numberValue(v)
	}
	if v, ok := payload["unit_of_measure"]; ok {
		recipe.UnitOfMeasure = unitOrDefault(v)
	}
	if v, ok := payload["inventory_location"]; ok {
		recipe.InventoryLocation = stringValue(v)
	}
	if v, ok := payload["parts"]; ok {
		recipe.Parts = partsFromPayload(recipe.ID, v)
		replaceParts = true
	}
	if v, ok := payload["labor"]; ok {
		recipe.Labor = laborFromPayload(recipe.ID, v)
		replaceLabor = true
	}
	return replaceParts, replaceLabor
}

func applyDimensions(recipe *models.Recipe, v any) {
	dims, ok := v.(map[string]any)
	if !ok {
		return
	}
	recipe.Length = numberValue(dims["length"])
	recipe.Width = numberValue(dims["width"])
	recipe.Height = numberValue(dims["height"])
	recipe.DimensionUnit = stringValue(dims["unit"])
}

func partsFromPayload(recipeID string, v any) []models.RecipePart {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	parts := make([]models.RecipePart, 0, len(raw))
	for i, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		parts = append(parts, models.RecipePart{
			RecipeID:    recipeID,
			Name:        stringValue(entry["name"]),
			Quantity:    numberValue(entry["quantity"]),
			CostPerUnit: numberValue(entry["cost_per_unit"]),
			Position:    i,
		})
	}
	return parts
}

func laborFromPayload(recipeID string, v any) []models.RecipeLabor {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	labor := make([]models.RecipeLabor, 0, len(raw))
	for i, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		labor = append(labor, models.RecipeLabor{
			RecipeID:    recipeID,
			Type:        stringValue(entry["type"]),
			CostPerHour: numberValue(entry["cost_per_hour"]),
			HoursNeeded: numberValue(entry["hours_needed"]),
			Position:    i,
		})
	}
	return labor
}

func unitOrDefault(v any) string {
	unit := strings.TrimSpace(stringValue(v))
	if unit == "" {
		return "piece"
	}
	return unit
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func numberValue(v any) float64 {
	n, _ := numeric(v)
	return n
}

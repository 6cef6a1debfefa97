package recipes

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"recipecost-backend/internal/audit"
	"recipecost-backend/internal/costing"
	"recipecost-backend/internal/models"
)

type DimensionsResponse struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type PartResponse struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

type LaborResponse struct {
	Type        string  `json:"type"`
	CostPerHour float64 `json:"cost_per_hour"`
	HoursNeeded float64 `json:"hours_needed"`
}

type RecipeResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Weight            float64            `json:"weight"`
	Dimensions        DimensionsResponse `json:"dimensions"`
	YieldPercentage   float64            `json:"yield_percentage"`
	WasteFactor       float64            `json:"waste_factor"`
	UnitOfMeasure     string             `json:"unit_of_measure"`
	InventoryLocation string             `json:"inventory_location"`
	Parts             []PartResponse     `json:"parts"`
	Labor             []LaborResponse    `json:"labor"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

func recipeResponse(r *models.Recipe) RecipeResponse {
	parts := make([]PartResponse, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, PartResponse{
			Name:        p.Name,
			Quantity:    p.Quantity,
			CostPerUnit: p.CostPerUnit,
		})
	}

	labor := make([]LaborResponse, 0, len(r.Labor))
	for _, l := range r.Labor {
		labor = append(labor, LaborResponse{
			Type:        l.Type,
			CostPerHour: l.CostPerHour,
			HoursNeeded: l.HoursNeeded,
		})
	}

	return RecipeResponse{
		ID:     r.ID,
		Name:   r.Name,
		Weight: r.Weight,
		Dimensions: DimensionsResponse{
			Length: r.Length,
			Width:  r.Width,
			Height: r.Height,
			Unit:   r.DimensionUnit,
		},
		YieldPercentage:   r.YieldPercentage,
		WasteFactor:       r.WasteFactor,
		UnitOfMeasure:     r.UnitOfMeasure,
		InventoryLocation: r.InventoryLocation,
		Parts:             parts,
		Labor:             labor,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// GET /api/recipes
func ListRecipesHandler(repo *Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := repo.GetAll()
		if err != nil {
			return err
		}

		resp := make([]RecipeResponse, 0, len(all))
		for i := range all {
			resp = append(resp, recipeResponse(&all[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/recipes/:id
func GetRecipeHandler(repo *Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipe, err := repo.GetByID(c.Params("id"))
		if err != nil {
			return err
		}
		if recipe == nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}
		return c.JSON(recipeResponse(recipe))
	}
}

// POST /api/recipes
func CreateRecipeHandler(repo *Repository, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload map[string]any
		if err := c.BodyParser(&payload); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if res := ValidateRecipe(payload); !res.Valid {
			return fiber.NewError(fiber.StatusBadRequest, res.Message)
		}

		recipe, err := repo.Create(payload)
		if err != nil {
			return err
		}

		_ = recorder.Write(audit.LogOptions{
			EntityType:  "recipe",
			EntityID:    recipe.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Recipe created: %s", recipe.Name),
			After:       recipeResponse(recipe),
		})

		return c.Status(fiber.StatusCreated).JSON(recipeResponse(recipe))
	}
}

// PUT /api/recipes/:id
func UpdateRecipeHandler(repo *Repository, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload map[string]any
		if err := c.BodyParser(&payload); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if res := ValidateRecipeUpdate(payload); !res.Valid {
			return fiber.NewError(fiber.StatusBadRequest, res.Message)
		}

		id := c.Params("id")
		before, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if before == nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		updated, err := repo.Update(id, payload)
		if err != nil {
			return err
		}
		if updated == nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		_ = recorder.Write(audit.LogOptions{
			EntityType:  "recipe",
			EntityID:    updated.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Recipe updated: %s", updated.Name),
			Before:      recipeResponse(before),
			After:       recipeResponse(updated),
		})

		return c.JSON(recipeResponse(updated))
	}
}

// DELETE /api/recipes/:id
func DeleteRecipeHandler(repo *Repository, recorder *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		before, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if before == nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		deleted, err := repo.Delete(id)
		if err != nil {
			return err
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		_ = recorder.Write(audit.LogOptions{
			EntityType:  "recipe",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Recipe deleted: %s", before.Name),
			Before:      recipeResponse(before),
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/recipes/:id/cost
func RecipeCostHandler(repo *Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipe, err := repo.GetByID(c.Params("id"))
		if err != nil {
			return err
		}
		if recipe == nil {
			return fiber.NewError(fiber.StatusNotFound, "Recipe not found")
		}

		breakdown, err := costing.ComputeCost(recipe)
		if err != nil {
			return err
		}
		return c.JSON(breakdown)
	}
}

// GET /api/recipes/cost/summary
func CostSummaryHandler(repo *Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := repo.GetAll()
		if err != nil {
			return err
		}
		return c.JSON(costing.ComputeFleetSummary(all))
	}
}

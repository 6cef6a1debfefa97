package recipes

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipecost-backend/internal/models"
)

// Repository owns all recipe persistence. Multi-row writes (recipe plus its
// parts and labor rows) run inside a single transaction so a failure partway
// through never leaves a half-written recipe behind.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Parts", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Labor", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

// GetByID returns nil without an error when the id is unknown.
func (r *Repository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := withItems(r.db).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetAll returns all recipes, newest created_at first.
func (r *Repository) GetAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := withItems(r.db).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create shapes the validated payload into a new recipe (id and timestamps
// generated here) and inserts it together with its parts and labor rows.
func (r *Repository) Create(payload map[string]any) (*models.Recipe, error) {
	recipe := recipeFromPayload(payload)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update shallow-merges the validated partial payload over the stored recipe
// and stamps a new updated_at. Parts and labor collections are fully replaced
// (delete then reinsert) only when the payload carries them. Returns nil
// without an error when the id is unknown.
func (r *Repository) Update(id string, payload map[string]any) (*models.Recipe, error) {
	var recipe models.Recipe

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := withItems(tx).First(&recipe, "id = ?", id).Error; err != nil {
			return err
		}

		replaceParts, replaceLabor := applyRecipeUpdate(&recipe, payload)

		if err := tx.Omit(clause.Associations).Save(&recipe).Error; err != nil {
			return err
		}

		if replaceParts {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipePart{}).Error; err != nil {
				return err
			}
			if len(recipe.Parts) > 0 {
				if err := tx.Create(&recipe.Parts).Error; err != nil {
					return err
				}
			}
		}
		if replaceLabor {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeLabor{}).Error; err != nil {
				return err
			}
			if len(recipe.Labor) > 0 {
				if err := tx.Create(&recipe.Labor).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Delete removes the recipe and cascades to its parts and labor rows.
// Returns false without an error when the id is unknown.
func (r *Repository) Delete(id string) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipePart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeLabor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

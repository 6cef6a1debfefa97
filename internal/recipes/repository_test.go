package recipes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipecost-backend/internal/database"
	"recipecost-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(validRecipePayload())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, "Steel Bracket", fetched.Name)
	assert.Equal(t, 2.5, fetched.Weight)
	assert.Equal(t, 10.0, fetched.Length)
	assert.Equal(t, 4.0, fetched.Width)
	assert.Equal(t, 2.0, fetched.Height)
	assert.Equal(t, "cm", fetched.DimensionUnit)
	assert.Equal(t, 95.0, fetched.YieldPercentage)
	assert.Equal(t, 0.2, fetched.WasteFactor)
	assert.Equal(t, "piece", fetched.UnitOfMeasure)
	assert.Equal(t, "A-12", fetched.InventoryLocation)

	require.Len(t, fetched.Parts, 1)
	assert.Equal(t, "steel plate", fetched.Parts[0].Name)
	assert.Equal(t, 2.0, fetched.Parts[0].Quantity)
	assert.Equal(t, 5.0, fetched.Parts[0].CostPerUnit)

	require.Len(t, fetched.Labor, 1)
	assert.Equal(t, "machining", fetched.Labor[0].Type)
	assert.Equal(t, 20.0, fetched.Labor[0].CostPerHour)
	assert.Equal(t, 3.0, fetched.Labor[0].HoursNeeded)
}

func TestCreateDefaultsUnitOfMeasure(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	payload := validRecipePayload()
	payload["unit_of_measure"] = ""

	created, err := repo.Create(payload)
	require.NoError(t, err)
	assert.Equal(t, "piece", created.UnitOfMeasure)
}

func TestGetByIDUnknownReturnsNil(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	recipe, err := repo.GetByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestGetAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	older, err := repo.Create(validRecipePayload())
	require.NoError(t, err)

	payload := validRecipePayload()
	payload["name"] = "Aluminium Frame"
	newer, err := repo.Create(payload)
	require.NoError(t, err)

	// force a clear created_at gap; sqlite timestamps are not monotonic
	// enough within a single test run
	require.NoError(t, db.Model(&models.Recipe{}).
		Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
}

func TestUpdateScalarLeavesCollectionsAlone(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(validRecipePayload())
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, map[string]any{"waste_factor": 0.5})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 0.5, updated.WasteFactor)
	assert.Equal(t, "Steel Bracket", updated.Name)
	require.Len(t, updated.Parts, 1)
	assert.Equal(t, "steel plate", updated.Parts[0].Name)
	require.Len(t, updated.Labor, 1)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateReplacesPartsWholesale(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(validRecipePayload())
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, map[string]any{
		"parts": []any{
			map[string]any{"name": "brass rod", "quantity": 1.0, "cost_per_unit": 3.0},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.Len(t, updated.Parts, 1)
	assert.Equal(t, "brass rod", updated.Parts[0].Name)

	// the old row is gone from the table, not just from the response
	var count int64
	require.NoError(t, db.Model(&models.RecipePart{}).
		Where("recipe_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// labor was not supplied, so it is untouched
	require.Len(t, updated.Labor, 1)
	assert.Equal(t, "machining", updated.Labor[0].Type)
}

func TestUpdateClearsPartsWithEmptyList(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(validRecipePayload())
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, map[string]any{"parts": []any{}})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Empty(t, updated.Parts)

	var count int64
	require.NoError(t, db.Model(&models.RecipePart{}).
		Where("recipe_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateReplacesDimensionsWholesale(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(validRecipePayload())
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, map[string]any{
		"dimensions": map[string]any{
			"length": 1.0, "width": 1.0, "height": 1.0, "unit": "in",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 1.0, updated.Length)
	assert.Equal(t, 1.0, updated.Width)
	assert.Equal(t, 1.0, updated.Height)
	assert.Equal(t, "in", updated.DimensionUnit)
}

func TestUpdateUnknownIDReturnsNil(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	updated, err := repo.Update("no-such-id", map[string]any{"waste_factor": 0.1})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteCascadesToLineItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(validRecipePayload())
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	var parts, labor int64
	require.NoError(t, db.Model(&models.RecipePart{}).
		Where("recipe_id = ?", created.ID).Count(&parts).Error)
	require.NoError(t, db.Model(&models.RecipeLabor{}).
		Where("recipe_id = ?", created.ID).Count(&labor).Error)
	assert.EqualValues(t, 0, parts)
	assert.EqualValues(t, 0, labor)
}

func TestDeleteUnknownIDReturnsFalse(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	deleted, err := repo.Delete("no-such-id")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPartsKeepPayloadOrder(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	payload := validRecipePayload()
	payload["parts"] = []any{
		map[string]any{"name": "first", "quantity": 1.0, "cost_per_unit": 1.0},
		map[string]any{"name": "second", "quantity": 1.0, "cost_per_unit": 1.0},
		map[string]any{"name": "third", "quantity": 1.0, "cost_per_unit": 1.0},
	}

	created, err := repo.Create(payload)
	require.NoError(t, err)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Parts, 3)
	assert.Equal(t, "first", fetched.Parts[0].Name)
	assert.Equal(t, "second", fetched.Parts[1].Name)
	assert.Equal(t, "third", fetched.Parts[2].Name)
}

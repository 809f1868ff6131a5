package food

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kSpets25/expire/domain"
	"github.com/kSpets25/expire/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.FoodItem{}))
	return db
}

func newFoodItem(userID uuid.UUID, code string) *entities.FoodItem {
	return &entities.FoodItem{
		ID:             uuid.New(),
		UserID:         userID,
		Code:           code,
		ProductName:    "Nutella",
		Brands:         "Ferrero",
		Quantity:       1,
		Unit:           domain.UnitItems,
		ExpirationDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveFoodDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.SaveFood(ctx, newFoodItem(userID, "3017620422003")))

	err := repo.SaveFood(ctx, newFoodItem(userID, "3017620422003"))
	assert.ErrorIs(t, err, domain.ErrFoodAlreadySaved)

	var count int64
	require.NoError(t, db.Model(&entities.FoodItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "store must end with exactly one record")
}

func TestSaveFoodSameCodeDifferentOwners(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveFood(ctx, newFoodItem(uuid.New(), "3017620422003")))
	require.NoError(t, repo.SaveFood(ctx, newFoodItem(uuid.New(), "3017620422003")))
}

func TestGetFoodItemsFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	nutella := newFoodItem(userID, "3017620422003")
	oatmeal := newFoodItem(userID, "111")
	oatmeal.ProductName = "Rolled Oats"
	require.NoError(t, repo.SaveFood(ctx, nutella))
	require.NoError(t, repo.SaveFood(ctx, oatmeal))
	require.NoError(t, repo.SaveFood(ctx, newFoodItem(uuid.New(), "222")))

	all, err := repo.GetFoodItems(ctx, userID.String(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCode, err := repo.GetFoodItems(ctx, userID.String(), "111", "")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "Rolled Oats", byCode[0].ProductName)

	byName, err := repo.GetFoodItems(ctx, userID.String(), "", "nutell")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "3017620422003", byName[0].Code)
}

func TestDeleteFoodItem(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	item := newFoodItem(userID, "111")
	require.NoError(t, repo.SaveFood(ctx, item))

	require.NoError(t, repo.DeleteFoodItem(ctx, item.ID.String(), userID.String()))

	err := repo.DeleteFoodItem(ctx, item.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestDeleteFoodItemForeignOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	item := newFoodItem(ownerID, "111")
	require.NoError(t, repo.SaveFood(ctx, item))

	// a different user deleting the same id must look like "not found"
	err := repo.DeleteFoodItem(ctx, item.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.FoodItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "record must survive a foreign delete attempt")
}

func TestGetFoodItemByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	item := newFoodItem(userID, "111")
	require.NoError(t, repo.SaveFood(ctx, item))

	got, err := repo.GetFoodItemByID(ctx, item.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, "111", got.Code)

	_, err = repo.GetFoodItemByID(ctx, item.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

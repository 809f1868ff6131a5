package food

import (
	"context"
	"errors"
	"strings"

	"github.com/kSpets25/expire/domain"
	"github.com/kSpets25/expire/entities"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		SaveFood(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItems(ctx context.Context, userID string, code string, name string) ([]*entities.FoodItem, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// SaveFood inserts the item, relying on the (user_id, code) unique index
// to arbitrate concurrent saves of the same product. There is no prior
// existence check; the constraint violation is the duplicate signal.
func (r *foodRepository) SaveFood(ctx context.Context, foodItem *entities.FoodItem) error {
	if err := r.db.WithContext(ctx).Create(foodItem).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrFoodAlreadySaved
		}
		return err
	}
	return nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, code string, name string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if code != "" {
		query = query.Where("code = ?", code)
	}
	if name != "" {
		query = query.Where("LOWER(product_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	if err := query.Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&foodItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	return &foodItem, nil
}

// DeleteFoodItem removes the record only when it belongs to userID. A
// foreign record and an absent one are both reported as not found.
func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.FoodItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFoodItemNotFound
	}
	return nil
}

package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"uniqueIndex:idx_food_items_user_code" json:"user_id"`
	Code            string          `gorm:"uniqueIndex:idx_food_items_user_code;not null" json:"code"`
	ProductName     string          `json:"product_name"`
	Brands          string          `json:"brands"`
	NutriscoreGrade string          `json:"nutriscore_grade,omitempty"`
	Nutriments      json.RawMessage `gorm:"type:jsonb" json:"nutriments,omitempty"`
	ImageSmallURL   string          `json:"image_small_url,omitempty"`
	Quantity        int             `json:"quantity"`
	Unit            string          `json:"unit"` // "items" or "cases"
	ExpirationDate  time.Time       `json:"expiration_date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

package domain

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	UnitItems = "items"
	UnitCases = "cases"

	DefaultProductName = "No name"
	DefaultBrands      = "Unknown"
)

var (
	MessageSuccessSaveFood      = "food saved to inventory"
	MessageSuccessGetSavedFoods = "saved foods retrieved successfully"
	MessageSuccessGetExpiring   = "expiring foods retrieved successfully"
	MessageSuccessDeleteFood    = "food removed from inventory"

	MessageFailedSaveFood      = "failed to save food"
	MessageFailedGetSavedFoods = "failed to retrieve saved foods"
	MessageFailedGetExpiring   = "failed to retrieve expiring foods"
	MessageFailedDeleteFood    = "failed to remove food"
	MessageFoodAlreadySaved    = "food already saved"

	ErrMissingExpirationDate = errors.New("expiration date is required")
	ErrMissingProductCode    = errors.New("product code is required")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidUnit           = errors.New("unit must be items or cases")
	ErrFoodAlreadySaved      = errors.New("food already saved")
	ErrFoodItemNotFound      = errors.New("food item not found")
)

type (
	SaveFoodRequest struct {
		Code            string          `json:"code" validate:"required"`
		ProductName     string          `json:"product_name" validate:"omitempty"`
		Brands          string          `json:"brands" validate:"omitempty"`
		NutriscoreGrade string          `json:"nutriscore_grade" validate:"omitempty"`
		Nutriments      json.RawMessage `json:"nutriments" validate:"omitempty"`
		ImageSmallURL   string          `json:"image_small_url" validate:"omitempty"`
		Quantity        *int            `json:"quantity" validate:"omitempty"`
		Unit            string          `json:"unit" validate:"omitempty"`
		ExpirationDate  string          `json:"expiration_date" validate:"required"`
	}

	FoodResponse struct {
		ID              string          `json:"id"`
		Code            string          `json:"code"`
		ProductName     string          `json:"product_name"`
		Brands          string          `json:"brands"`
		NutriscoreGrade string          `json:"nutriscore_grade,omitempty"`
		Nutriments      json.RawMessage `json:"nutriments,omitempty"`
		ImageSmallURL   string          `json:"image_small_url,omitempty"`
		Quantity        int             `json:"quantity"`
		Unit            string          `json:"unit"`
		ExpirationDate  time.Time       `json:"expiration_date"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	ExpiringFoodResponse struct {
		FoodResponse
		DaysLeft int    `json:"days_left"`
		Urgency  string `json:"urgency"`
	}
)

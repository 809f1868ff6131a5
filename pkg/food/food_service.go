package food

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kSpets25/expire/domain"
	"github.com/kSpets25/expire/entities"
)

type (
	FoodService interface {
		SaveFood(ctx context.Context, req domain.SaveFoodRequest, userID string) (domain.FoodResponse, error)
		GetSavedFoods(ctx context.Context, userID string, code string, name string) ([]domain.FoodResponse, error)
		GetExpiringFoods(ctx context.Context, userID string) ([]domain.ExpiringFoodResponse, error)
		DeleteFood(ctx context.Context, id string, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		now:            time.Now,
	}
}

// SaveFood validates and normalizes a product picked from a lookup
// result, then persists it. Exactly one record is written per
// successful call; a repeated (user, code) pair fails with
// domain.ErrFoodAlreadySaved.
func (s *foodService) SaveFood(ctx context.Context, req domain.SaveFoodRequest, userID string) (domain.FoodResponse, error) {
	if req.ExpirationDate == "" {
		return domain.FoodResponse{}, domain.ErrMissingExpirationDate
	}
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrMissingExpirationDate
	}

	if req.Code == "" {
		return domain.FoodResponse{}, domain.ErrMissingProductCode
	}

	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return domain.FoodResponse{}, domain.ErrInvalidQuantity
		}
		quantity = *req.Quantity
	}

	unit := req.Unit
	if unit == "" {
		unit = domain.UnitItems
	}
	if unit != domain.UnitItems && unit != domain.UnitCases {
		return domain.FoodResponse{}, domain.ErrInvalidUnit
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	productName := req.ProductName
	if productName == "" {
		productName = domain.DefaultProductName
	}
	brands := req.Brands
	if brands == "" {
		brands = domain.DefaultBrands
	}

	foodItem := &entities.FoodItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		Code:            req.Code,
		ProductName:     productName,
		Brands:          brands,
		NutriscoreGrade: req.NutriscoreGrade,
		Nutriments:      req.Nutriments,
		ImageSmallURL:   req.ImageSmallURL,
		Quantity:        quantity,
		Unit:            unit,
		ExpirationDate:  expirationDate,
	}

	if err := s.foodRepository.SaveFood(ctx, foodItem); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(foodItem), nil
}

func (s *foodService) GetSavedFoods(ctx context.Context, userID string, code string, name string) ([]domain.FoodResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, code, name)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodResponse(item))
	}

	return response, nil
}

// GetExpiringFoods returns the owner's items due within the expiry
// window, most urgent first.
func (s *foodService) GetExpiringFoods(ctx context.Context, userID string) ([]domain.ExpiringFoodResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}

	expiring := FilterExpiring(foodItems, s.now())

	response := make([]domain.ExpiringFoodResponse, 0, len(expiring))
	for _, e := range expiring {
		response = append(response, domain.ExpiringFoodResponse{
			FoodResponse: toFoodResponse(e.Item),
			DaysLeft:     e.DaysLeft,
			Urgency:      e.Urgency,
		})
	}

	return response, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, userID string) error {
	return s.foodRepository.DeleteFoodItem(ctx, id, userID)
}

func toFoodResponse(item *entities.FoodItem) domain.FoodResponse {
	return domain.FoodResponse{
		ID:              item.ID.String(),
		Code:            item.Code,
		ProductName:     item.ProductName,
		Brands:          item.Brands,
		NutriscoreGrade: item.NutriscoreGrade,
		Nutriments:      item.Nutriments,
		ImageSmallURL:   item.ImageSmallURL,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		ExpirationDate:  item.ExpirationDate,
		CreatedAt:       item.CreatedAt,
	}
}

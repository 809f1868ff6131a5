package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kSpets25/expire/domain"
	"github.com/kSpets25/expire/internal/api/presenters"
	"github.com/kSpets25/expire/pkg/food"
)

type (
	FoodHandler interface {
		SaveFood(c *fiber.Ctx) error
		GetSavedFoods(c *fiber.Ctx) error
		GetExpiringFoods(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) SaveFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveFood, err)
	}

	res, err := h.foodService.SaveFood(c.Context(), *req, userID)
	if err != nil {
		return foodErrorResponse(c, domain.MessageFailedSaveFood, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusCreated, domain.MessageSuccessSaveFood)
}

func (h *foodHandler) GetSavedFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	code := c.Query("code")
	name := c.Query("name")

	foods, err := h.foodService.GetSavedFoods(c.Context(), userID, code, name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSavedFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"product": foods}, fiber.StatusOK, domain.MessageSuccessGetSavedFoods)
}

func (h *foodHandler) GetExpiringFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	foods, err := h.foodService.GetExpiringFoods(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExpiring, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"product": foods}, fiber.StatusOK, domain.MessageSuccessGetExpiring)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.foodService.DeleteFood(c.Context(), itemID, userID); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

// foodErrorResponse keeps duplicate and validation outcomes
// distinguishable by status code, and hides store internals behind a
// generic failure for anything unexpected.
func foodErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrFoodAlreadySaved):
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFoodAlreadySaved, err)
	case errors.Is(err, domain.ErrMissingExpirationDate),
		errors.Is(err, domain.ErrMissingProductCode),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
}

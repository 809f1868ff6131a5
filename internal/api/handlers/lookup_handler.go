package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kSpets25/expire/domain"
	"github.com/kSpets25/expire/internal/api/presenters"
	"github.com/kSpets25/expire/pkg/lookup"
)

type (
	LookupHandler interface {
		SearchProducts(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
	}
)

func NewLookupHandler(lookupService lookup.LookupService) LookupHandler {
	return &lookupHandler{lookupService: lookupService}
}

func (h *lookupHandler) SearchProducts(c *fiber.Ctx) error {
	barcode := c.Query("barcode")
	name := c.Query("name")

	if barcode == "" && name == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchProducts, domain.ErrMissingSearchTerm)
	}

	var products []domain.Product
	if barcode != "" {
		product, err := h.lookupService.SearchByBarcode(c.Context(), barcode)
		if err != nil {
			return lookupErrorResponse(c, err)
		}
		products = []domain.Product{product}
	} else {
		var err error
		products, err = h.lookupService.SearchByName(c.Context(), name)
		if err != nil {
			return lookupErrorResponse(c, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"product": products}, fiber.StatusOK, domain.MessageSuccessSearchProducts)
}

func lookupErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound, err)
	}
	return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearchProducts, err)
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/store"
)

// CatalogController serves the public read-only catalog: repair
// services, supported brands and models, time slots and reviews.
type CatalogController struct {
	store *store.Store
}

func NewCatalogController(st *store.Store) *CatalogController {
	return &CatalogController{store: st}
}

func (cc *CatalogController) GetServices(c *fiber.Ctx) error {
	return c.JSON(cc.store.Services())
}

func (cc *CatalogController) GetBrands(c *fiber.Ctx) error {
	return c.JSON(store.Brands)
}

func (cc *CatalogController) GetModels(c *fiber.Ctx) error {
	brand := models.Brand(c.Params("brand"))
	if !brand.Valid() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown brand",
		})
	}
	return c.JSON(cc.store.ModelsForBrand(brand))
}

// GetTimeSlots returns every slot; pass ?available=true to get only
// slots a customer can still pick.
func (cc *CatalogController) GetTimeSlots(c *fiber.Ctx) error {
	slots := cc.store.TimeSlots()
	if c.Query("available") == "true" {
		open := make([]models.TimeSlot, 0, len(slots))
		for _, s := range slots {
			if s.Available {
				open = append(open, s)
			}
		}
		slots = open
	}
	return c.JSON(slots)
}

func (cc *CatalogController) GetBlockedDates(c *fiber.Ctx) error {
	return c.JSON(cc.store.BlockedDates())
}

func (cc *CatalogController) GetReviews(c *fiber.Ctx) error {
	return c.JSON(cc.store.Reviews())
}

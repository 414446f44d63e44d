package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/swiftfix/booking-app/store"
)

// ReviewController lets authenticated customers leave a review. The
// reviewer name is taken from the session token, never from the body.
type ReviewController struct {
	store    *store.Store
	validate *validator.Validate
}

func NewReviewController(st *store.Store) *ReviewController {
	return &ReviewController{store: st, validate: validator.New()}
}

func (rc *ReviewController) Create(c *fiber.Ctx) error {
	var input struct {
		Rating int    `json:"rating" validate:"required,min=1,max=5"`
		Text   string `json:"text" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := rc.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5 and text is required",
		})
	}

	name := c.Locals("userName").(string)
	review := rc.store.AddReview(name, input.Rating, input.Text)
	return c.Status(fiber.StatusCreated).JSON(review)
}

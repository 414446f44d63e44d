package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftfix/booking-app/controllers"
	"github.com/swiftfix/booking-app/middleware"
)

func SetupCatalogRoutes(app *fiber.App, catalog *controllers.CatalogController) {
	app.Get("/services", catalog.GetServices)
	app.Get("/brands", catalog.GetBrands)
	app.Get("/brands/:brand/models", catalog.GetModels)
	app.Get("/timeslots", catalog.GetTimeSlots)
	app.Get("/blocked-dates", catalog.GetBlockedDates)
	app.Get("/reviews", catalog.GetReviews)
}

func SetupReviewRoutes(app *fiber.App, review *controllers.ReviewController, jwtSecret string) {
	app.Post("/reviews", middleware.Protected(jwtSecret), review.Create)
}

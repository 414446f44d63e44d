package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftfix/booking-app/controllers"
	"github.com/swiftfix/booking-app/middleware"
)

func SetupAdminRoutes(app *fiber.App, admin *controllers.AdminController, jwtSecret string) {
	app.Post("/admin/login", admin.Login)

	group := app.Group("/admin", middleware.Protected(jwtSecret), middleware.RequireAdmin())

	group.Get("/bookings", admin.GetBookings)
	group.Patch("/bookings/:id/status", admin.UpdateBookingStatus)

	group.Put("/services/:id", admin.UpdateService)

	group.Post("/timeslots", admin.AddTimeSlot)
	group.Patch("/timeslots", admin.UpdateTimeSlot)
	group.Delete("/timeslots", admin.DeleteTimeSlot)

	group.Post("/blocked-dates", admin.BlockDate)
	group.Delete("/blocked-dates/:date", admin.UnblockDate)

	group.Get("/overview", admin.Overview)
	group.Get("/reports", admin.Reports)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftfix/booking-app/controllers"
	"github.com/swiftfix/booking-app/middleware"
)

func SetupAuthRoutes(app *fiber.App, auth *controllers.AuthController, jwtSecret string) {
	group := app.Group("/auth")

	group.Post("/register", auth.Register)
	group.Post("/login", auth.Login)
	group.Post("/logout", middleware.Protected(jwtSecret), auth.Logout)
	group.Get("/me", middleware.Protected(jwtSecret), auth.Me)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftfix/booking-app/controllers"
)

func SetupWizardRoutes(app *fiber.App, wiz *controllers.WizardController) {
	group := app.Group("/wizard")

	group.Post("/", wiz.Start)
	group.Get("/:id", wiz.Get)
	group.Post("/:id/brand", wiz.SelectBrand)
	group.Post("/:id/model", wiz.SelectModel)
	group.Post("/:id/model/skip", wiz.SkipModel)
	group.Post("/:id/issue", wiz.SelectIssue)
	group.Post("/:id/diagnose", wiz.Diagnose)
	group.Post("/:id/diagnose/apply", wiz.ApplyDiagnosis)
	group.Patch("/:id/schedule", wiz.UpdateSchedule)
	group.Post("/:id/review", wiz.Review)
	group.Post("/:id/submit", wiz.Submit)
	group.Post("/:id/back", wiz.Back)
	group.Delete("/:id", wiz.Cancel)
}

package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swiftfix/booking-app/ai"
	"github.com/swiftfix/booking-app/config"
	"github.com/swiftfix/booking-app/controllers"
	appcron "github.com/swiftfix/booking-app/cron"
	"github.com/swiftfix/booking-app/routes"
	"github.com/swiftfix/booking-app/store"
	"github.com/swiftfix/booking-app/utils"
	"github.com/swiftfix/booking-app/wizard"
)

func main() {
	cfg := config.Load()

	utils.InitializeLogger(cfg.IsProduction())
	log := utils.GetLogger()
	defer log.Sync()

	st := store.New()
	wiz := wizard.NewManager(st, st, cfg.SubmitDelay)

	var diag ai.Diagnoser = ai.Unavailable{}
	if cfg.GeminiKey != "" {
		g, err := ai.NewGemini(context.Background(), cfg.GeminiKey, log)
		if err != nil {
			log.Warn("gemini client unavailable, AI diagnosis disabled", zap.Error(err))
		} else {
			diag = g
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, AI diagnosis disabled")
	}

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, log)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := controllers.NewAuthController(cfg)
	catalog := controllers.NewCatalogController(st)
	review := controllers.NewReviewController(st)
	wizardCtl := controllers.NewWizardController(wiz, diag, mailer, log)
	admin := controllers.NewAdminController(st, wiz, cfg, log)

	routes.SetupAuthRoutes(app, auth, cfg.JWTSecret)
	routes.SetupCatalogRoutes(app, catalog)
	routes.SetupReviewRoutes(app, review, cfg.JWTSecret)
	routes.SetupWizardRoutes(app, wizardCtl)
	routes.SetupAdminRoutes(app, admin, cfg.JWTSecret)

	appcron.StartCronJobs(wiz, st, mailer, log)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

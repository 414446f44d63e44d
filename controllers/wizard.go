package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/swiftfix/booking-app/ai"
	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/utils"
	"github.com/swiftfix/booking-app/wizard"
)

// WizardController drives the booking funnel over HTTP. Each handler
// maps one customer action onto the draft state machine.
type WizardController struct {
	wiz      *wizard.Manager
	diag     ai.Diagnoser
	mailer   *utils.Mailer
	validate *validator.Validate
	log      *zap.Logger
}

func NewWizardController(wiz *wizard.Manager, diag ai.Diagnoser, mailer *utils.Mailer, log *zap.Logger) *WizardController {
	return &WizardController{
		wiz:      wiz,
		diag:     diag,
		mailer:   mailer,
		validate: validator.New(),
		log:      log,
	}
}

func (wc *WizardController) Start(c *fiber.Ctx) error {
	draft := wc.wiz.Start()
	return c.Status(fiber.StatusCreated).JSON(draft)
}

func (wc *WizardController) Get(c *fiber.Ctx) error {
	draft, err := wc.wiz.Get(c.Params("id"))
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) SelectBrand(c *fiber.Ctx) error {
	var input struct {
		Brand string `json:"brand" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badJSON(c)
	}
	if err := wc.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand is required",
		})
	}

	draft, err := wc.wiz.SelectBrand(c.Params("id"), models.Brand(input.Brand))
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) SelectModel(c *fiber.Ctx) error {
	var input struct {
		ModelID string `json:"modelId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badJSON(c)
	}
	if err := wc.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Model is required",
		})
	}

	draft, err := wc.wiz.SelectModel(c.Params("id"), input.ModelID)
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) SkipModel(c *fiber.Ctx) error {
	draft, err := wc.wiz.SkipModel(c.Params("id"))
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) SelectIssue(c *fiber.Ctx) error {
	var input struct {
		IssueID string `json:"issueId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badJSON(c)
	}
	if err := wc.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Issue is required",
		})
	}

	draft, err := wc.wiz.SelectIssue(c.Params("id"), input.IssueID)
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

// Diagnose runs the customer's free-text problem description through
// the AI assistant. The draft stays on the issue step; the customer
// can apply or discard the suggestion.
func (wc *WizardController) Diagnose(c *fiber.Ctx) error {
	var input struct {
		Description string `json:"description" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badJSON(c)
	}
	if err := wc.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Description is required",
		})
	}

	id := c.Params("id")
	if err := wc.wiz.BeginDiagnosis(id); err != nil {
		return wc.fail(c, err)
	}

	result := wc.diag.Diagnose(c.Context(), input.Description)
	wc.wiz.FinishDiagnosis(id, result)

	draft, err := wc.wiz.Get(id)
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) ApplyDiagnosis(c *fiber.Ctx) error {
	draft, err := wc.wiz.ApplyDiagnosis(c.Params("id"))
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) UpdateSchedule(c *fiber.Ctx) error {
	var patch wizard.SchedulePatch
	if err := c.BodyParser(&patch); err != nil {
		return badJSON(c)
	}

	draft, err := wc.wiz.UpdateSchedule(c.Params("id"), patch)
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

// Review moves the draft from the schedule step to the confirmation
// step once the contact and appointment details are complete.
func (wc *WizardController) Review(c *fiber.Ctx) error {
	draft, err := wc.wiz.Advance(c.Params("id"))
	if err != nil {
		return wc.fail(c, err)
	}
	return c.JSON(draft)
}

func (wc *WizardController) Submit(c *fiber.Ctx) error {
	id := c.Params("id")
	booking, err := wc.wiz.Submit(id)
	if err != nil {
		return wc.fail(c, err)
	}

	go wc.mailer.SendBookingConfirmation(booking)

	draft, err := wc.wiz.Get(id)
	if err != nil {
		return wc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"draft":   draft,
		"booking": booking,
	})
}

func (wc *WizardController) Back(c *fiber.Ctx) error {
	draft, cancelled, err := wc.wiz.Back(c.Params("id"))
	if err != nil {
		return wc.fail(c, err)
	}
	if cancelled {
		return c.JSON(fiber.Map{"cancelled": true})
	}
	return c.JSON(draft)
}

func (wc *WizardController) Cancel(c *fiber.Ctx) error {
	wc.wiz.Cancel(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (wc *WizardController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wizard.ErrDraftNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking draft not found",
		})
	case errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrSubmitInFlight),
		errors.Is(err, wizard.ErrDiagnosisInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, wizard.ErrUnknownBrand),
		errors.Is(err, wizard.ErrUnknownModel),
		errors.Is(err, wizard.ErrUnknownIssue),
		errors.Is(err, wizard.ErrIncompleteSchedule):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		wc.log.Error("wizard operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

func badJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Cannot parse JSON",
	})
}

package controllers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/swiftfix/booking-app/config"
	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/reports"
	"github.com/swiftfix/booking-app/store"
	"github.com/swiftfix/booking-app/wizard"
)

const bookingsPerPage = 10

// AdminController serves the back-office dashboard: the booking
// ledger, catalog management, blocked dates and the reporting views.
type AdminController struct {
	store    *store.Store
	wiz      *wizard.Manager
	cfg      config.Config
	validate *validator.Validate
	log      *zap.Logger
}

func NewAdminController(st *store.Store, wiz *wizard.Manager, cfg config.Config, log *zap.Logger) *AdminController {
	return &AdminController{
		store:    st,
		wiz:      wiz,
		cfg:      cfg,
		validate: validator.New(),
		log:      log,
	}
}

// Login checks the shared admin password and issues an admin token.
func (ac *AdminController) Login(c *fiber.Ctx) error {
	var input struct {
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := ac.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Password is required",
		})
	}
	if input.Password != ac.cfg.AdminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid password",
		})
	}

	token, err := signToken(ac.cfg.JWTSecret, jwt.MapClaims{
		"id":    "ADMIN",
		"name":  "Administrator",
		"email": "",
		"role":  "admin",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}
	return c.JSON(fiber.Map{"token": token})
}

// GetBookings lists the ledger newest-first with status filtering,
// name/id search and fixed-size pagination.
func (ac *AdminController) GetBookings(c *fiber.Ctx) error {
	status := c.Query("status", "All")
	search := c.Query("search")
	page := c.QueryInt("page", 1)

	filtered := reports.FilterBookings(ac.store.Bookings(), status, search)
	pageItems, page, totalPages := reports.Paginate(filtered, page, bookingsPerPage)

	return c.JSON(fiber.Map{
		"bookings":   pageItems,
		"total":      len(filtered),
		"page":       page,
		"totalPages": totalPages,
	})
}

// UpdateBookingStatus sets any valid status on a booking. An unknown
// booking id is a silent no-op by contract.
func (ac *AdminController) UpdateBookingStatus(c *fiber.Ctx) error {
	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	status := models.BookingStatus(input.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking status",
		})
	}

	id := c.Params("id")
	ac.store.UpdateBookingStatus(id, status)
	return c.JSON(fiber.Map{
		"id":     id,
		"status": status,
	})
}

// UpdateService replaces a catalog service's pricing and description.
func (ac *AdminController) UpdateService(c *fiber.Ctx) error {
	var input models.RepairIssue
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	input.ID = c.Params("id")
	ac.store.UpdateService(input)

	if svc, ok := ac.store.ServiceByID(input.ID); ok {
		return c.JSON(svc)
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Service not found",
	})
}

// AddTimeSlot accepts a 24-hour "HH:MM" time and stores it as a
// 12-hour display slot, keeping the list chronologically sorted.
func (ac *AdminController) AddTimeSlot(c *fiber.Ctx) error {
	var input struct {
		Time string `json:"time" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := ac.store.AddTimeSlot(input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Time must be in HH:MM 24-hour format",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(ac.store.TimeSlots())
}

// UpdateTimeSlot toggles a slot's availability.
func (ac *AdminController) UpdateTimeSlot(c *fiber.Ctx) error {
	var input struct {
		Time      string `json:"time" validate:"required"`
		Available bool   `json:"available"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := ac.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Time is required",
		})
	}
	ac.store.UpdateTimeSlot(input.Time, input.Available)
	if !input.Available {
		ac.wiz.InvalidateTimeSlot(input.Time)
	}
	return c.JSON(ac.store.TimeSlots())
}

func (ac *AdminController) DeleteTimeSlot(c *fiber.Ctx) error {
	slot := c.Query("time")
	if slot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Time is required",
		})
	}
	ac.store.DeleteTimeSlot(slot)
	ac.wiz.InvalidateTimeSlot(slot)
	return c.JSON(ac.store.TimeSlots())
}

// BlockDate closes the shop on a date. Any in-flight funnel session
// that had picked the date loses its selection immediately.
func (ac *AdminController) BlockDate(c *fiber.Ctx) error {
	var input struct {
		Date string `json:"date" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date must be in YYYY-MM-DD format",
		})
	}

	ac.store.BlockDate(input.Date)
	ac.wiz.InvalidateDate(input.Date)
	ac.log.Info("date blocked", zap.String("date", input.Date))

	return c.JSON(ac.store.BlockedDates())
}

func (ac *AdminController) UnblockDate(c *fiber.Ctx) error {
	date := c.Params("date")
	ac.store.UnblockDate(date)
	return c.JSON(ac.store.BlockedDates())
}

// Overview returns the dashboard headline stats plus the monthly
// revenue series for the current year.
func (ac *AdminController) Overview(c *fiber.Ctx) error {
	bookings := ac.store.Bookings()
	stats := reports.Overview(bookings)
	monthly := reports.MonthlyRevenue(bookings, time.Now().Year())

	return c.JSON(fiber.Map{
		"stats":          stats,
		"monthlyRevenue": monthly,
	})
}

// Reports runs a filtered revenue report. Type defaults to monthly;
// the daily and weekly reference date defaults to today, the monthly
// reference to the current month.
func (ac *AdminController) Reports(c *fiber.Ctx) error {
	now := time.Now()
	filter := reports.ReportFilter{
		Service: c.Query("service", "All"),
		Type:    reports.ReportType(c.Query("type", string(reports.ReportMonthly))),
		Date:    c.Query("date", now.Format("2006-01-02")),
		Month:   c.Query("month", now.Format("2006-01")),
	}
	switch filter.Type {
	case reports.ReportDaily, reports.ReportWeekly, reports.ReportMonthly:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Report type must be daily, weekly or monthly",
		})
	}

	rows := reports.FilterReport(ac.store.Bookings(), filter)
	return c.JSON(fiber.Map{
		"summary":  reports.Summarize(rows),
		"bookings": rows,
	})
}

// Package wizard drives a customer through the booking funnel: an
// ordered sequence of selection steps that ends with a submitted
// booking on the ledger.
package wizard

import (
	"errors"
	"time"

	"github.com/swiftfix/booking-app/models"
)

type Step string

const (
	StepBrand    Step = "brand"
	StepModel    Step = "model"
	StepIssue    Step = "issue"
	StepSchedule Step = "schedule"
	StepConfirm  Step = "confirm"
	StepSuccess  Step = "success"
)

// Steps is the funnel's forward order, used for progress display.
var Steps = []Step{StepBrand, StepModel, StepIssue, StepSchedule, StepConfirm, StepSuccess}

// node describes one state in the funnel graph. Forward and backward
// edges plus the advance gate all live in this single table, so the
// handlers never duplicate transition logic.
type node struct {
	next Step
	prev Step
	gate func(*Draft) bool
}

var graph = map[Step]node{
	StepBrand: {
		next: StepModel,
		gate: func(d *Draft) bool { return d.SelectedBrand != "" },
	},
	StepModel: {
		next: StepIssue,
		prev: StepBrand,
		// model is optional: an explicit skip advances without one
		gate: func(d *Draft) bool { return true },
	},
	StepIssue: {
		next: StepSchedule,
		prev: StepModel,
		gate: func(d *Draft) bool { return d.SelectedIssue != nil },
	},
	StepSchedule: {
		next: StepConfirm,
		prev: StepIssue,
		gate: func(d *Draft) bool {
			return d.AppointmentDate != "" && d.AppointmentTime != "" &&
				d.CustomerName != "" && d.CustomerPhone != ""
		},
	},
	StepConfirm: {
		next: StepSuccess,
		prev: StepSchedule,
		gate: func(d *Draft) bool { return true },
	},
	StepSuccess: {},
}

// BlockedDateMessage is surfaced inline when a closed date is picked.
const BlockedDateMessage = "Sorry, we are closed on this date. Please select another day."

// UnavailableSlotMessage is surfaced inline when the chosen time is not
// an available slot.
const UnavailableSlotMessage = "Sorry, that time slot is not available. Please choose another time."

// Draft is one in-progress funnel session. It is owned exclusively by
// the wizard until submission converts it into a Booking.
type Draft struct {
	ID              string              `json:"id"`
	Step            Step                `json:"step"`
	SelectedBrand   models.Brand        `json:"selectedBrand,omitempty"`
	SelectedModel   *models.DeviceModel `json:"selectedModel,omitempty"`
	SelectedIssue   *models.RepairIssue `json:"selectedIssue,omitempty"`
	AppointmentDate string              `json:"appointmentDate"`
	AppointmentTime string              `json:"appointmentTime"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	AIDiagnosis     string              `json:"aiDiagnosis,omitempty"`
	DateError       string              `json:"dateError,omitempty"`
	TimeError       string              `json:"timeError,omitempty"`

	submitting bool
	aiBusy     bool
	updatedAt  time.Time
}

var (
	ErrDraftNotFound      = errors.New("wizard session not found")
	ErrWrongStep          = errors.New("action not valid for current step")
	ErrUnknownBrand       = errors.New("unknown brand")
	ErrUnknownModel       = errors.New("unknown model")
	ErrUnknownIssue       = errors.New("unknown service")
	ErrIncompleteSchedule = errors.New("appointment date, time, name and phone are required")
	ErrSubmitInFlight     = errors.New("submission already in progress")
	ErrDiagnosisInFlight  = errors.New("diagnosis already in progress")
)

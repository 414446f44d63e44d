package wizard

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swiftfix/booking-app/models"
)

// Catalog is the read side of the reference data the funnel consumes.
type Catalog interface {
	Services() []models.RepairIssue
	ModelsForBrand(models.Brand) []models.DeviceModel
	TimeSlots() []models.TimeSlot
	IsDateBlocked(date string) bool
}

// Ledger receives the finished booking.
type Ledger interface {
	AppendBooking(models.Booking)
}

// Manager owns all in-progress funnel drafts. Draft mutation is
// serialized behind a single mutex; the submit delay and outbound AI
// calls happen outside it.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]*Draft

	catalog     Catalog
	ledger      Ledger
	submitDelay time.Duration
	now         func() time.Time
}

func NewManager(catalog Catalog, ledger Ledger, submitDelay time.Duration) *Manager {
	return &Manager{
		drafts:      make(map[string]*Draft),
		catalog:     catalog,
		ledger:      ledger,
		submitDelay: submitDelay,
		now:         time.Now,
	}
}

// Start opens a new funnel session at the brand step.
func (m *Manager) Start() Draft {
	d := &Draft{
		ID:        uuid.NewString(),
		Step:      StepBrand,
		updatedAt: m.now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = d
	return *d
}

// Get returns a snapshot of a draft.
func (m *Manager) Get(id string) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return *d, nil
}

// SelectBrand records the brand choice and advances to model selection.
func (m *Manager) SelectBrand(id string, brand models.Brand) (Draft, error) {
	if !brand.Valid() {
		return Draft{}, ErrUnknownBrand
	}
	return m.update(id, StepBrand, func(d *Draft) error {
		d.SelectedBrand = brand
		d.Step = graph[d.Step].next
		return nil
	})
}

// SelectModel records the device model and advances to issue selection.
func (m *Manager) SelectModel(id, modelID string) (Draft, error) {
	return m.update(id, StepModel, func(d *Draft) error {
		for _, dm := range m.catalog.ModelsForBrand(d.SelectedBrand) {
			if dm.ID == modelID {
				d.SelectedModel = &dm
				d.Step = graph[d.Step].next
				return nil
			}
		}
		return ErrUnknownModel
	})
}

// SkipModel advances past model selection without setting one.
func (m *Manager) SkipModel(id string) (Draft, error) {
	return m.update(id, StepModel, func(d *Draft) error {
		d.SelectedModel = nil
		d.Step = graph[d.Step].next
		return nil
	})
}

// SelectIssue records the repair service and advances to scheduling.
func (m *Manager) SelectIssue(id, issueID string) (Draft, error) {
	return m.update(id, StepIssue, func(d *Draft) error {
		for _, svc := range m.catalog.Services() {
			if svc.ID == issueID {
				d.SelectedIssue = &svc
				d.Step = graph[d.Step].next
				return nil
			}
		}
		return ErrUnknownIssue
	})
}

// BeginDiagnosis marks the draft's AI request in flight. A second
// request while one is outstanding is rejected.
func (m *Manager) BeginDiagnosis(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return ErrDraftNotFound
	}
	if d.aiBusy {
		return ErrDiagnosisInFlight
	}
	d.aiBusy = true
	return nil
}

// FinishDiagnosis clears the busy flag unconditionally and stores the
// diagnosis text on the draft.
func (m *Manager) FinishDiagnosis(id, diagnosis string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return
	}
	d.aiBusy = false
	if diagnosis != "" {
		d.AIDiagnosis = diagnosis
	}
	d.updatedAt = m.now()
}

// ApplyDiagnosis maps the AI result onto a concrete service and jumps
// straight to scheduling. The General Diagnosis entry is used when
// present, otherwise the first catalog service.
func (m *Manager) ApplyDiagnosis(id string) (Draft, error) {
	return m.update(id, StepIssue, func(d *Draft) error {
		services := m.catalog.Services()
		if len(services) == 0 {
			return ErrUnknownIssue
		}
		chosen := services[0]
		for _, svc := range services {
			if svc.ID == "diagnosis" {
				chosen = svc
				break
			}
		}
		d.SelectedIssue = &chosen
		d.Step = StepSchedule
		return nil
	})
}

// SchedulePatch carries partial updates to the schedule step. Nil
// fields are left untouched.
type SchedulePatch struct {
	Date  *string `json:"appointmentDate"`
	Time  *string `json:"appointmentTime"`
	Name  *string `json:"customerName"`
	Email *string `json:"customerEmail"`
	Phone *string `json:"customerPhone"`
}

// UpdateSchedule applies schedule-step edits. Picking a blocked date
// clears the date and surfaces an inline error without losing the rest
// of the draft; picking a valid date clears any previously chosen time
// and the error. The same treatment applies to times: only a currently
// available catalog slot is accepted, anything else clears the time and
// surfaces an inline error.
func (m *Manager) UpdateSchedule(id string, patch SchedulePatch) (Draft, error) {
	return m.update(id, StepSchedule, func(d *Draft) error {
		if patch.Date != nil {
			if m.catalog.IsDateBlocked(*patch.Date) {
				d.AppointmentDate = ""
				d.DateError = BlockedDateMessage
			} else {
				d.AppointmentDate = *patch.Date
				d.AppointmentTime = ""
				d.DateError = ""
				d.TimeError = ""
			}
		}
		if patch.Time != nil {
			switch {
			case *patch.Time == "":
				d.AppointmentTime = ""
				d.TimeError = ""
			case m.slotAvailable(*patch.Time):
				d.AppointmentTime = *patch.Time
				d.TimeError = ""
			default:
				d.AppointmentTime = ""
				d.TimeError = UnavailableSlotMessage
			}
		}
		if patch.Name != nil {
			d.CustomerName = *patch.Name
		}
		if patch.Email != nil {
			d.CustomerEmail = *patch.Email
		}
		if patch.Phone != nil {
			d.CustomerPhone = *patch.Phone
		}
		return nil
	})
}

// Advance moves the draft forward one step, honoring the gate for the
// current state. Used for the schedule -> confirm transition; the
// selection steps advance as a side effect of their selection calls.
func (m *Manager) Advance(id string) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	n := graph[d.Step]
	if n.next == "" {
		return Draft{}, ErrWrongStep
	}
	if !n.gate(d) {
		if d.Step == StepSchedule {
			return Draft{}, ErrIncompleteSchedule
		}
		return Draft{}, ErrWrongStep
	}
	if d.Step == StepConfirm {
		// confirm -> success only happens through Submit
		return Draft{}, ErrWrongStep
	}
	d.Step = n.next
	d.updatedAt = m.now()
	return *d, nil
}

// Back moves to the previous step. From brand and success there is no
// backward edge: the session is cancelled instead.
func (m *Manager) Back(id string) (Draft, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, false, ErrDraftNotFound
	}
	prev := graph[d.Step].prev
	if prev == "" {
		delete(m.drafts, id)
		return Draft{}, true, nil
	}
	d.Step = prev
	d.updatedAt = m.now()
	return *d, false, nil
}

// Cancel discards the draft with no side effects on the ledger.
func (m *Manager) Cancel(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
}

// Submit finalizes the draft at the confirm step. The configured delay
// simulates processing latency; while a submit is outstanding,
// re-entrant submits are rejected. The draft transitions
// to success only after the booking has been appended to the ledger.
func (m *Manager) Submit(id string) (models.Booking, error) {
	m.mu.Lock()
	d, ok := m.drafts[id]
	if !ok {
		m.mu.Unlock()
		return models.Booking{}, ErrDraftNotFound
	}
	if d.Step != StepConfirm {
		m.mu.Unlock()
		return models.Booking{}, ErrWrongStep
	}
	if d.submitting {
		m.mu.Unlock()
		return models.Booking{}, ErrSubmitInFlight
	}
	d.submitting = true
	snapshot := *d
	m.mu.Unlock()

	time.Sleep(m.submitDelay)

	booking := m.buildBooking(snapshot)
	m.ledger.AppendBooking(booking)

	m.mu.Lock()
	if d, ok := m.drafts[id]; ok {
		d.submitting = false
		d.Step = StepSuccess
		d.updatedAt = m.now()
	}
	m.mu.Unlock()

	return booking, nil
}

// buildBooking snapshots the draft into a ledger record. The id scheme
// (4-digit random suffix) can collide; the ledger does not enforce
// uniqueness.
func (m *Manager) buildBooking(d Draft) models.Booking {
	b := models.Booking{
		ID:              fmt.Sprintf("BK-%d", 1000+rand.Intn(9000)),
		Status:          models.StatusPending,
		DateCreated:     m.now().Format("2006-01-02"),
		SelectedBrand:   d.SelectedBrand,
		SelectedModel:   "Unknown Device",
		SelectedIssue:   "General Inquiry",
		Price:           "TBD",
		AppointmentDate: d.AppointmentDate,
		AppointmentTime: d.AppointmentTime,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
	}
	if b.SelectedBrand == "" {
		b.SelectedBrand = models.BrandOther
	}
	if d.SelectedModel != nil {
		b.SelectedModel = d.SelectedModel.Name
	}
	if d.SelectedIssue != nil {
		b.SelectedIssue = d.SelectedIssue.Name
		b.Price = d.SelectedIssue.PriceRange
	}
	return b
}

func (m *Manager) slotAvailable(slot string) bool {
	for _, s := range m.catalog.TimeSlots() {
		if s.Time == slot {
			return s.Available
		}
	}
	return false
}

// InvalidateTimeSlot clears the appointment time from every draft that
// had picked it. Called when the admin disables or deletes a slot, so
// no session can advance with a selection that is no longer valid.
func (m *Manager) InvalidateTimeSlot(slot string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drafts {
		if d.AppointmentTime == slot {
			d.AppointmentTime = ""
			d.TimeError = UnavailableSlotMessage
			d.updatedAt = m.now()
		}
	}
}

// InvalidateDate clears the appointment date from every draft that had
// picked it. Called when the admin blocks a date, so no session can
// advance with a selection that is no longer valid.
func (m *Manager) InvalidateDate(date string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drafts {
		if d.AppointmentDate == date {
			d.AppointmentDate = ""
			d.DateError = BlockedDateMessage
			d.updatedAt = m.now()
		}
	}
}

// PurgeStale drops drafts that have been idle longer than maxAge.
func (m *Manager) PurgeStale(maxAge time.Duration) int {
	cutoff := m.now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, d := range m.drafts {
		if d.updatedAt.Before(cutoff) && !d.submitting {
			delete(m.drafts, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) update(id string, step Step, fn func(*Draft) error) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	if d.Step != step {
		return Draft{}, ErrWrongStep
	}
	if err := fn(d); err != nil {
		return Draft{}, err
	}
	d.updatedAt = m.now()
	return *d, nil
}

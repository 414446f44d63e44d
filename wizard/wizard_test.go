package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st := store.New()
	return NewManager(st, st, 0), st
}

func TestFullFunnelProducesPendingBooking(t *testing.T) {
	m, st := newTestManager(t)

	d := m.Start()
	assert.Equal(t, StepBrand, d.Step)

	d, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	assert.Equal(t, StepModel, d.Step)

	d, err = m.SelectModel(d.ID, "ip15")
	require.NoError(t, err)
	require.NotNil(t, d.SelectedModel)
	assert.Equal(t, "iPhone 15", d.SelectedModel.Name)
	assert.Equal(t, StepIssue, d.Step)

	d, err = m.SelectIssue(d.ID, "battery")
	require.NoError(t, err)
	require.NotNil(t, d.SelectedIssue)
	assert.Equal(t, StepSchedule, d.Step)

	date := "2026-09-15"
	slot := "10:00 AM"
	name := "Jane Doe"
	phone := "555-1234"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{
		Date: &date, Time: &slot, Name: &name, Phone: &phone,
	})
	require.NoError(t, err)

	d, err = m.Advance(d.ID)
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, d.Step)

	booking, err := m.Submit(d.ID)
	require.NoError(t, err)

	assert.Regexp(t, `^BK-\d{4}$`, booking.ID)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, models.BrandApple, booking.SelectedBrand)
	assert.Equal(t, "iPhone 15", booking.SelectedModel)
	assert.Equal(t, "Battery Replacement", booking.SelectedIssue)
	assert.Equal(t, "₱1,500 - ₱4,000", booking.Price)
	assert.Equal(t, "Jane Doe", booking.CustomerName)

	// the booking lands at the head of the ledger
	ledger := st.Bookings()
	require.NotEmpty(t, ledger)
	assert.Equal(t, booking.ID, ledger[0].ID)

	d, err = m.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, StepSuccess, d.Step)
}

func TestSkipModelLeavesModelUnset(t *testing.T) {
	m, _ := newTestManager(t)

	d := m.Start()
	d, err := m.SelectBrand(d.ID, models.BrandOther)
	require.NoError(t, err)

	d, err = m.SkipModel(d.ID)
	require.NoError(t, err)
	assert.Nil(t, d.SelectedModel)
	assert.Equal(t, StepIssue, d.Step)
}

func TestSubmitWithoutModelUsesDefaults(t *testing.T) {
	m, _ := newTestManager(t)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandOther)
	require.NoError(t, err)
	_, err = m.SkipModel(d.ID)
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "diagnosis")
	require.NoError(t, err)

	date, slot, name, phone := "2026-09-16", "09:00 AM", "Bob", "555-0000"
	_, err = m.UpdateSchedule(d.ID, SchedulePatch{
		Date: &date, Time: &slot, Name: &name, Phone: &phone,
	})
	require.NoError(t, err)
	_, err = m.Advance(d.ID)
	require.NoError(t, err)

	booking, err := m.Submit(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Device", booking.SelectedModel)
	assert.Equal(t, "Free", booking.Price)
}

func TestBlockedDateClearsSelectionAndGatesAdvance(t *testing.T) {
	m, st := newTestManager(t)
	st.BlockDate("2026-09-20")

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandSamsung)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "s24")
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "screen")
	require.NoError(t, err)

	blocked := "2026-09-20"
	name, phone, slot := "Ann", "555-9999", "11:00 AM"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{
		Date: &blocked, Time: &slot, Name: &name, Phone: &phone,
	})
	require.NoError(t, err)
	assert.Empty(t, d.AppointmentDate)
	assert.Equal(t, BlockedDateMessage, d.DateError)

	_, err = m.Advance(d.ID)
	assert.ErrorIs(t, err, ErrIncompleteSchedule)

	// picking a valid date clears the error and the stale time choice
	ok := "2026-09-21"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{Date: &ok})
	require.NoError(t, err)
	assert.Equal(t, ok, d.AppointmentDate)
	assert.Empty(t, d.AppointmentTime)
	assert.Empty(t, d.DateError)
}

func TestUnavailableTimeSlotClearsSelectionAndGatesAdvance(t *testing.T) {
	m, st := newTestManager(t)
	st.UpdateTimeSlot("10:00 AM", false)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "ip15")
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "battery")
	require.NoError(t, err)

	date, name, phone := "2026-09-15", "Jane Doe", "555-1234"
	disabled := "10:00 AM"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{
		Date: &date, Time: &disabled, Name: &name, Phone: &phone,
	})
	require.NoError(t, err)
	assert.Empty(t, d.AppointmentTime)
	assert.Equal(t, UnavailableSlotMessage, d.TimeError)

	_, err = m.Advance(d.ID)
	assert.ErrorIs(t, err, ErrIncompleteSchedule)

	// a string that is no slot at all gets the same treatment
	bogus := "99:99 ZZ"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{Time: &bogus})
	require.NoError(t, err)
	assert.Empty(t, d.AppointmentTime)
	assert.Equal(t, UnavailableSlotMessage, d.TimeError)

	// picking an open slot clears the error and unblocks the gate
	open := "11:00 AM"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{Time: &open})
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM", d.AppointmentTime)
	assert.Empty(t, d.TimeError)

	_, err = m.Advance(d.ID)
	require.NoError(t, err)
}

func TestInvalidateTimeSlotClearsMatchingDrafts(t *testing.T) {
	m, _ := newTestManager(t)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SkipModel(d.ID)
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "screen")
	require.NoError(t, err)
	slot := "02:00 PM"
	_, err = m.UpdateSchedule(d.ID, SchedulePatch{Time: &slot})
	require.NoError(t, err)

	m.InvalidateTimeSlot("02:00 PM")

	d, err = m.Get(d.ID)
	require.NoError(t, err)
	assert.Empty(t, d.AppointmentTime)
	assert.Equal(t, UnavailableSlotMessage, d.TimeError)
}

func TestSelectingNewDateClearsTime(t *testing.T) {
	m, _ := newTestManager(t)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandGoogle)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "p8")
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "camera")
	require.NoError(t, err)

	date, slot := "2026-10-01", "02:00 PM"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{Date: &date, Time: &slot})
	require.NoError(t, err)
	assert.Equal(t, "02:00 PM", d.AppointmentTime)

	other := "2026-10-02"
	d, err = m.UpdateSchedule(d.ID, SchedulePatch{Date: &other})
	require.NoError(t, err)
	assert.Empty(t, d.AppointmentTime)
}

func TestWrongStepAndUnknownSelections(t *testing.T) {
	m, _ := newTestManager(t)
	d := m.Start()

	_, err := m.SelectIssue(d.ID, "screen")
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = m.SelectBrand(d.ID, models.Brand("Nokia"))
	assert.ErrorIs(t, err, ErrUnknownBrand)

	_, err = m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "s24")
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = m.Get("nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestBackFromFirstStepCancelsSession(t *testing.T) {
	m, _ := newTestManager(t)
	d := m.Start()

	_, cancelled, err := m.Back(d.ID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	_, err = m.Get(d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestBackWalksThePreviousEdges(t *testing.T) {
	m, _ := newTestManager(t)
	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "ip14")
	require.NoError(t, err)

	d, cancelled, err := m.Back(d.ID)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, StepModel, d.Step)

	d, _, err = m.Back(d.ID)
	require.NoError(t, err)
	assert.Equal(t, StepBrand, d.Step)
}

func TestDoubleSubmitIsRejected(t *testing.T) {
	st := store.New()
	m := NewManager(st, st, 50*time.Millisecond)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "ip15")
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "screen")
	require.NoError(t, err)
	date, slot, name, phone := "2026-09-18", "03:00 PM", "Sam", "555-7777"
	_, err = m.UpdateSchedule(d.ID, SchedulePatch{
		Date: &date, Time: &slot, Name: &name, Phone: &phone,
	})
	require.NoError(t, err)
	_, err = m.Advance(d.ID)
	require.NoError(t, err)

	errs := make(chan error, 1)
	go func() {
		_, err := m.Submit(d.ID)
		errs <- err
	}()
	time.Sleep(10 * time.Millisecond)

	_, err = m.Submit(d.ID)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	require.NoError(t, <-errs)
	assert.Len(t, st.Bookings(), 1)
}

func TestInvalidateDateClearsMatchingDrafts(t *testing.T) {
	m, _ := newTestManager(t)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SelectModel(d.ID, "ip13")
	require.NoError(t, err)
	_, err = m.SelectIssue(d.ID, "water")
	require.NoError(t, err)
	date := "2026-11-05"
	_, err = m.UpdateSchedule(d.ID, SchedulePatch{Date: &date})
	require.NoError(t, err)

	m.InvalidateDate("2026-11-05")

	d, err = m.Get(d.ID)
	require.NoError(t, err)
	assert.Empty(t, d.AppointmentDate)
	assert.Equal(t, BlockedDateMessage, d.DateError)
}

func TestPurgeStaleSkipsActiveDrafts(t *testing.T) {
	st := store.New()
	m := NewManager(st, st, 0)

	now := time.Now()
	m.now = func() time.Time { return now }
	stale := m.Start()

	m.now = func() time.Time { return now.Add(2 * time.Hour) }
	fresh := m.Start()

	removed := m.PurgeStale(time.Hour)
	assert.Equal(t, 1, removed)

	_, err := m.Get(stale.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestApplyDiagnosisJumpsToSchedule(t *testing.T) {
	m, _ := newTestManager(t)

	d := m.Start()
	_, err := m.SelectBrand(d.ID, models.BrandApple)
	require.NoError(t, err)
	_, err = m.SkipModel(d.ID)
	require.NoError(t, err)

	require.NoError(t, m.BeginDiagnosis(d.ID))
	assert.ErrorIs(t, m.BeginDiagnosis(d.ID), ErrDiagnosisInFlight)
	m.FinishDiagnosis(d.ID, "Likely a worn battery.")

	d, err = m.ApplyDiagnosis(d.ID)
	require.NoError(t, err)
	assert.Equal(t, StepSchedule, d.Step)
	require.NotNil(t, d.SelectedIssue)
	assert.Equal(t, "diagnosis", d.SelectedIssue.ID)
	assert.Equal(t, "Likely a worn battery.", d.AIDiagnosis)
}

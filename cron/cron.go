package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/store"
	"github.com/swiftfix/booking-app/utils"
	"github.com/swiftfix/booking-app/wizard"
)

// staleDraftAge is how long an untouched funnel session survives
// before cleanup reclaims it.
const staleDraftAge = time.Hour

// StartCronJobs wires the background maintenance: abandoned funnel
// sessions are purged every 30 minutes, and appointment reminders go
// out every morning for the next day's bookings.
func StartCronJobs(wiz *wizard.Manager, st *store.Store, mailer *utils.Mailer, log *zap.Logger) *cron.Cron {
	c := cron.New()

	c.AddFunc("*/30 * * * *", func() {
		if n := wiz.PurgeStale(staleDraftAge); n > 0 {
			log.Info("purged stale funnel drafts", zap.Int("count", n))
		}
	})

	c.AddFunc("0 8 * * *", func() {
		sendReminders(st, mailer, log)
	})

	c.Start()
	log.Info("cron jobs started")
	return c
}

func sendReminders(st *store.Store, mailer *utils.Mailer, log *zap.Logger) {
	if !mailer.Enabled() {
		return
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	sent := 0
	for _, b := range st.Bookings() {
		if b.AppointmentDate != tomorrow || b.Status == models.StatusCancelled {
			continue
		}
		mailer.SendReminder(b)
		sent++
	}
	if sent > 0 {
		log.Info("appointment reminders sent",
			zap.String("date", tomorrow),
			zap.Int("count", sent))
	}
}

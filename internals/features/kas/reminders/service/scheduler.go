package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"kaskelas_backend/internals/features/kas/reminders/model"
)

// StartReminderScheduler mendaftarkan job pengingat terjadwal.
// Jadwal cron kosong → scheduler tidak dijalankan (nil, nil).
func StartReminderScheduler(svc *Service, spec string, loc *time.Location, now func() time.Time) (*cron.Cron, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		log.Println("[REMINDER] REMINDER_CRON kosong, pengingat terjadwal tidak aktif")
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, _, err := svc.SendReminders(ctx, now(), 0, model.TriggerScheduled); err != nil {
			log.Printf("[REMINDER] job terjadwal gagal: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[REMINDER] scheduler aktif schedule=%q tz=%s", spec, loc)
	c.Start()
	return c, nil
}

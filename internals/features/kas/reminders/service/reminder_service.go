package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"kaskelas_backend/internals/features/kas/reminders/model"
	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
)

type CandidateSource interface {
	Candidates(ctx context.Context, now time.Time, minWeeks int) ([]tunggakan.ReminderCandidate, *tunggakan.Snapshot, error)
}

type LogStore interface {
	Create(ctx context.Context, l *model.ReminderLogModel) error
	List(ctx context.Context, limit int) ([]model.ReminderLogModel, error)
}

type Service struct {
	source   CandidateSource
	notifier Notifier
	logs     LogStore
	minWeeks int // 0 → late_threshold
}

func NewService(source CandidateSource, notifier Notifier, logs LogStore, minWeeks int) *Service {
	return &Service{source: source, notifier: notifier, logs: logs, minWeeks: minWeeks}
}

func (s *Service) resolveMinWeeks(minWeeks int) int {
	if minWeeks > 0 {
		return minWeeks
	}
	return s.minWeeks
}

func (s *Service) Candidates(ctx context.Context, now time.Time, minWeeks int) ([]tunggakan.ReminderCandidate, *tunggakan.Snapshot, error) {
	return s.source.Candidates(ctx, now, s.resolveMinWeeks(minWeeks))
}

// DeliveryResult: hasil kirim per siswa, disimpan sebagai payload log.
type DeliveryResult struct {
	tunggakan.ReminderCandidate
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// SendReminders mengirim pengingat ke semua kandidat satu per satu.
// Gagal di satu siswa dicatat lalu lanjut ke siswa berikutnya.
func (s *Service) SendReminders(ctx context.Context, now time.Time, minWeeks int, trigger model.ReminderTrigger) (*model.ReminderLogModel, []DeliveryResult, error) {
	cands, snap, err := s.Candidates(ctx, now, minWeeks)
	if err != nil {
		return nil, nil, err
	}
	usedMin := s.resolveMinWeeks(minWeeks)
	if usedMin <= 0 {
		usedMin = snap.Settings.LateThreshold
	}

	entry := &model.ReminderLogModel{
		ReminderLogTrigger:    trigger,
		ReminderLogMinWeeks:   usedMin,
		ReminderLogWeek:       snap.Roster.Summary.CurrentWeek,
		ReminderLogStudentIDs: pq.StringArray{},
	}
	results := make([]DeliveryResult, 0, len(cands))
	for _, c := range cands {
		r := DeliveryResult{ReminderCandidate: c}
		if err := s.notifier.Send(ctx, c.PhoneNumber, BuildReminderMessage(c, snap.Settings.ClassName)); err != nil {
			log.Printf("[REMINDER] gagal kirim ke %s (%s): %v", c.Name, c.StudentID, err)
			r.Error = err.Error()
			entry.ReminderLogFailed++
		} else {
			r.Sent = true
			entry.ReminderLogSent++
		}
		entry.ReminderLogStudentIDs = append(entry.ReminderLogStudentIDs, c.StudentID.String())
		results = append(results, r)
	}

	payload, err := sonic.Marshal(results)
	if err != nil {
		return nil, nil, err
	}
	entry.ReminderLogPayload = datatypes.JSON(payload)

	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, nil, err
	}
	log.Printf("[REMINDER] %s minggu %d: terkirim %d, gagal %d", trigger, entry.ReminderLogWeek, entry.ReminderLogSent, entry.ReminderLogFailed)
	return entry, results, nil
}

func (s *Service) Logs(ctx context.Context, limit int) ([]model.ReminderLogModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.logs.List(ctx, limit)
}

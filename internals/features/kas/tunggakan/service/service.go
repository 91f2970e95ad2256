package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	"kaskelas_backend/internals/helpers/apperr"
)

type StudentReader interface {
	List(ctx context.Context) ([]studentModel.StudentModel, error)
}

type PaymentReader interface {
	List(ctx context.Context) ([]paymentModel.PaymentModel, error)
}

// Service: pembungkus I/O di atas fungsi murni paket ini.
type Service struct {
	students StudentReader
	payments PaymentReader
	settings settingService.Reader
}

func NewService(students StudentReader, payments PaymentReader, settings settingService.Reader) *Service {
	return &Service{students: students, payments: payments, settings: settings}
}

// CurrentWeek: minggu berjalan menurut start_date di settings.
func CurrentWeek(now time.Time, st settingService.Settings) int {
	return WeekIndex(now, st.StartDate)
}

// Snapshot: posisi tunggakan seluruh kelas pada now.
type Snapshot struct {
	Settings settingService.Settings
	Roster   RosterArrearsResult
}

func (s *Service) Snapshot(ctx context.Context, now time.Time) (*Snapshot, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	week := CurrentWeek(now, st)
	return &Snapshot{Settings: st, Roster: RosterArrears(students, payments, week, st)}, nil
}

func (s *Service) ForStudent(ctx context.Context, id uuid.UUID, now time.Time) (*StudentArrears, error) {
	snap, err := s.Snapshot(ctx, now)
	if err != nil {
		return nil, err
	}
	for i := range snap.Roster.Rows {
		if snap.Roster.Rows[i].StudentID == id {
			return &snap.Roster.Rows[i], nil
		}
	}
	return nil, apperr.NotFound("Siswa aktif tidak ditemukan")
}

// Candidates: minWeeks <= 0 → pakai late_threshold dari settings.
func (s *Service) Candidates(ctx context.Context, now time.Time, minWeeks int) ([]ReminderCandidate, *Snapshot, error) {
	snap, err := s.Snapshot(ctx, now)
	if err != nil {
		return nil, nil, err
	}
	if minWeeks <= 0 {
		minWeeks = snap.Settings.LateThreshold
	}
	return ReminderCandidates(snap.Roster.Rows, minWeeks, snap.Settings.WeeklyAmount), snap, nil
}

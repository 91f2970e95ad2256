package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"kaskelas_backend/internals/features/kas/settings/model"
	"kaskelas_backend/internals/helpers/apperr"
	"kaskelas_backend/internals/helpers/dbtime"
)

const (
	DefaultWeeklyAmount  int64 = 2000
	DefaultLateThreshold       = 4
	DefaultClassName           = "Kas Kelas"
)

// Settings: konfigurasi bisnis yang sudah diparse + default.
type Settings struct {
	StartDate     time.Time `json:"start_date"`
	WeeklyAmount  int64     `json:"weekly_amount"`
	LateThreshold int       `json:"late_threshold"`
	ClassName     string    `json:"class_name"`
}

// LateAmount: nominal tunggakan yang membuat siswa berstatus terlambat.
func (s Settings) LateAmount() int64 {
	return int64(s.LateThreshold) * s.WeeklyAmount
}

// Reader dipakai fitur lain yang cuma butuh baca setting.
type Reader interface {
	Get(ctx context.Context) (Settings, error)
}

type Store interface {
	All(ctx context.Context) ([]model.SettingModel, error)
	Upsert(ctx context.Context, rows []model.SettingModel) error
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	store        Store
	loc          *time.Location
	defaultStart string
	inv          Invalidator
}

func NewService(store Store, loc *time.Location, defaultStart string, inv Invalidator) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, loc: loc, defaultStart: defaultStart, inv: inv}
}

// Defaults: nilai fallback kalau tabel settings kosong.
func (s *Service) Defaults() Settings {
	start, err := dbtime.ParseDate(s.defaultStart, s.loc)
	if err != nil {
		log.Printf("[WARN] KAS_DEFAULT_START_DATE tidak valid (%q), pakai hari ini", s.defaultStart)
		start = dbtime.StartOfDay(time.Now().In(s.loc))
	}
	return Settings{
		StartDate:     start,
		WeeklyAmount:  DefaultWeeklyAmount,
		LateThreshold: DefaultLateThreshold,
		ClassName:     DefaultClassName,
	}
}

func (s *Service) Get(ctx context.Context) (Settings, error) {
	rows, err := s.store.All(ctx)
	if err != nil {
		return Settings{}, err
	}
	out := s.Defaults()
	for _, r := range rows {
		v := strings.TrimSpace(r.SettingValue)
		switch r.SettingKey {
		case model.KeyStartDate:
			if t, err := dbtime.ParseDate(v, s.loc); err == nil {
				out.StartDate = t
			} else {
				log.Printf("[WARN] setting start_date rusak (%q), pakai default", v)
			}
		case model.KeyWeeklyAmount:
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
				out.WeeklyAmount = n
			} else {
				log.Printf("[WARN] setting weekly_amount rusak (%q), pakai default", v)
			}
		case model.KeyLateThreshold:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				out.LateThreshold = n
			} else {
				log.Printf("[WARN] setting late_threshold rusak (%q), pakai default", v)
			}
		case model.KeyClassName:
			if v != "" {
				out.ClassName = v
			}
		}
	}
	return out, nil
}

// Patch: field nil = tidak diubah.
type Patch struct {
	StartDate     *string
	WeeklyAmount  *int64
	LateThreshold *int
	ClassName     *string
}

// Update menyimpan patch. Mengubah start_date TIDAK menghitung ulang
// payment_week yang sudah tersimpan.
func (s *Service) Update(ctx context.Context, p Patch) (Settings, error) {
	var rows []model.SettingModel

	if p.StartDate != nil {
		t, err := dbtime.ParseDate(*p.StartDate, s.loc)
		if err != nil {
			return Settings{}, apperr.Validation("start_date", "format start_date harus YYYY-MM-DD")
		}
		rows = append(rows, model.SettingModel{SettingKey: model.KeyStartDate, SettingValue: t.Format(dbtime.DateLayout)})
	}
	if p.WeeklyAmount != nil {
		if *p.WeeklyAmount <= 0 {
			return Settings{}, apperr.Validation("weekly_amount", "iuran mingguan harus lebih dari 0")
		}
		rows = append(rows, model.SettingModel{SettingKey: model.KeyWeeklyAmount, SettingValue: strconv.FormatInt(*p.WeeklyAmount, 10)})
	}
	if p.LateThreshold != nil {
		if *p.LateThreshold < 1 {
			return Settings{}, apperr.Validation("late_threshold", "batas terlambat minimal 1 minggu")
		}
		rows = append(rows, model.SettingModel{SettingKey: model.KeyLateThreshold, SettingValue: strconv.Itoa(*p.LateThreshold)})
	}
	if p.ClassName != nil {
		name := strings.TrimSpace(*p.ClassName)
		if name == "" {
			return Settings{}, apperr.Validation("class_name", "nama kelas tidak boleh kosong")
		}
		rows = append(rows, model.SettingModel{SettingKey: model.KeyClassName, SettingValue: name})
	}

	if len(rows) > 0 {
		if err := s.store.Upsert(ctx, rows); err != nil {
			return Settings{}, err
		}
		if s.inv != nil {
			s.inv.Invalidate(ctx)
		}
	}
	return s.Get(ctx)
}

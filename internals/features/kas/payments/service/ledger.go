package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
	"kaskelas_backend/internals/helpers/apperr"
)

type Store interface {
	List(ctx context.Context) ([]model.PaymentModel, error)
	Create(ctx context.Context, p *model.PaymentModel) error
	// CreateMany: semua atau tidak sama sekali (satu transaksi).
	CreateMany(ctx context.Context, ps []*model.PaymentModel) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// StudentReader: cukup baca roster. Dipenuhi students/service.GormStore.
type StudentReader interface {
	List(ctx context.Context) ([]studentModel.StudentModel, error)
	Get(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Ledger: log iuran kas reguler & pemasukan lain (append-only, tanpa update).
type Ledger struct {
	store    Store
	students StudentReader
	settings settingService.Reader
	inv      Invalidator
}

func NewLedger(store Store, students StudentReader, settings settingService.Reader, inv Invalidator) *Ledger {
	return &Ledger{store: store, students: students, settings: settings, inv: inv}
}

type AddInput struct {
	Amount     int64
	Date       time.Time
	Method     model.PaymentMethod
	Note       string
	Source     model.PaymentSource
	StudentID  *uuid.UUID
	SourceName string
}

// Add memvalidasi lalu mencatat pembayaran. Minggu dihitung dari tanggal
// pembayaran dan start_date saat ini, lalu dibekukan.
func (l *Ledger) Add(ctx context.Context, in AddInput) (*model.PaymentModel, error) {
	st, err := l.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	p, err := l.build(ctx, in, st)
	if err != nil {
		return nil, err
	}
	if err := l.store.Create(ctx, p); err != nil {
		return nil, err
	}
	l.changed(ctx)
	return p, nil
}

// AddMany: semua input divalidasi dulu; satu saja gagal → tidak ada yang ditulis.
func (l *Ledger) AddMany(ctx context.Context, ins []AddInput) ([]*model.PaymentModel, error) {
	if len(ins) == 0 {
		return nil, apperr.Validation("payments", "minimal satu pembayaran")
	}
	st, err := l.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	ps := make([]*model.PaymentModel, 0, len(ins))
	for _, in := range ins {
		p, err := l.build(ctx, in, st)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err := l.store.CreateMany(ctx, ps); err != nil {
		return nil, err
	}
	l.changed(ctx)
	return ps, nil
}

func (l *Ledger) changed(ctx context.Context) {
	if l.inv != nil {
		l.inv.Invalidate(ctx)
	}
}

func (l *Ledger) build(ctx context.Context, in AddInput, st settingService.Settings) (*model.PaymentModel, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validation("payment_amount", "nominal harus lebih dari 0")
	}
	if in.Date.IsZero() {
		return nil, apperr.Validation("payment_date", "tanggal pembayaran wajib diisi")
	}
	if in.Method == "" {
		in.Method = model.MethodCash
	}
	if !in.Method.Valid() {
		return nil, apperr.Validation("payment_method", "metode pembayaran tidak dikenal: %s", in.Method)
	}
	if in.Source == "" {
		in.Source = model.SourceRegular
	}

	p := &model.PaymentModel{
		PaymentAmount: in.Amount,
		PaymentDate:   in.Date,
		PaymentMethod: in.Method,
		PaymentSource: in.Source,
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		p.PaymentNote = &note
	}

	switch in.Source {
	case model.SourceRegular:
		if in.StudentID == nil || *in.StudentID == uuid.Nil {
			return nil, apperr.Validation("payment_student_id", "siswa wajib dipilih untuk iuran reguler")
		}
		stu, err := l.students.Get(ctx, *in.StudentID)
		if err != nil {
			return nil, err
		}
		if stu == nil {
			return nil, apperr.Validation("payment_student_id", "siswa tidak ditemukan")
		}
		sid := stu.StudentID
		p.PaymentStudentID = &sid
	case model.SourceCustom:
		name := strings.TrimSpace(in.SourceName)
		if name == "" {
			return nil, apperr.Validation("payment_source_name", "sumber pemasukan wajib diisi")
		}
		p.PaymentSourceName = &name
	case model.SourceEvent:
		return nil, apperr.Validation("payment_source", "pemasukan event hanya dibuat saat event diselesaikan")
	default:
		return nil, apperr.Validation("payment_source", "sumber pembayaran tidak dikenal: %s", in.Source)
	}

	p.PaymentWeek = tunggakan.WeekIndex(p.PaymentDate, st.StartDate)
	return p, nil
}

func (l *Ledger) Remove(ctx context.Context, id uuid.UUID) error {
	ok, err := l.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Pembayaran tidak ditemukan")
	}
	l.changed(ctx)
	return nil
}

func (l *Ledger) All(ctx context.Context) ([]model.PaymentModel, error) {
	return l.store.List(ctx)
}

// ListFiltered: ambil semua lalu saring in-memory dengan Filter yang sama
// dipakai laporan & export.
func (l *Ledger) ListFiltered(ctx context.Context, f Filter) ([]PaymentRow, error) {
	payments, err := l.store.List(ctx)
	if err != nil {
		return nil, err
	}
	students, err := l.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return ListFiltered(payments, students, f), nil
}

package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kaskelas_backend/internals/features/kas/events/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
	"kaskelas_backend/internals/helpers/apperr"
)

type Store interface {
	List(ctx context.Context) ([]model.EventModel, error)
	Get(ctx context.Context, id uuid.UUID) (*model.EventModel, error) // nil,nil kalau tidak ada
	Create(ctx context.Context, e *model.EventModel) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error) // ikut hapus event_payments
	Payments(ctx context.Context, eventID uuid.UUID) ([]model.EventPaymentModel, error)
	AllPayments(ctx context.Context) ([]model.EventPaymentModel, error)

	// Transaction: fn gagal → semua tulisan di tx dibatalkan.
	Transaction(ctx context.Context, fn func(tx TxStore) error) error
}

// TxStore: operasi di dalam satu transaksi. LockEvent mengunci baris event
// (SELECT ... FOR UPDATE) sampai transaksi selesai.
type TxStore interface {
	LockEvent(ctx context.Context, id uuid.UUID) (*model.EventModel, error)
	Payments(ctx context.Context, eventID uuid.UUID) ([]model.EventPaymentModel, error)
	AddPayment(ctx context.Context, p *model.EventPaymentModel) error
	SaveEvent(ctx context.Context, e *model.EventModel) error
	CreateLedgerPayment(ctx context.Context, p *paymentModel.PaymentModel) error
}

type StudentReader interface {
	List(ctx context.Context) ([]studentModel.StudentModel, error)
	Get(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error)
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Engine struct {
	store    Store
	students StudentReader
	settings settingService.Reader
	inv      Invalidator
}

func NewEngine(store Store, students StudentReader, settings settingService.Reader, inv Invalidator) *Engine {
	return &Engine{store: store, students: students, settings: settings, inv: inv}
}

func (e *Engine) changed(ctx context.Context) {
	if e.inv != nil {
		e.inv.Invalidate(ctx)
	}
}

type CreateInput struct {
	Name             string
	Description      string
	TargetAmount     int64
	PerStudentAmount int64 // 0 → ceil(target / siswa aktif)
	StartDate        time.Time
	EndDate          time.Time
}

func (e *Engine) Create(ctx context.Context, in CreateInput) (*model.EventModel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("event_name", "nama event wajib diisi")
	}
	if in.TargetAmount <= 0 {
		return nil, apperr.Validation("event_target_amount", "target harus lebih dari 0")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, apperr.Validation("event_start_date", "tanggal mulai & selesai wajib diisi")
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, apperr.Validation("event_end_date", "tanggal selesai tidak boleh sebelum tanggal mulai")
	}
	if in.PerStudentAmount < 0 {
		return nil, apperr.Validation("event_per_student_amount", "nominal per siswa tidak boleh negatif")
	}

	per := in.PerStudentAmount
	if per == 0 {
		roster, err := e.students.List(ctx)
		if err != nil {
			return nil, err
		}
		n := 0
		for _, st := range roster {
			if st.IsActive() {
				n++
			}
		}
		if n == 0 {
			return nil, apperr.Validation("event_per_student_amount", "belum ada siswa aktif, isi nominal per siswa secara manual")
		}
		per = PerStudentAmount(in.TargetAmount, n)
	}

	ev := &model.EventModel{
		EventName:             name,
		EventDescription:      strings.TrimSpace(in.Description),
		EventTargetAmount:     in.TargetAmount,
		EventPerStudentAmount: per,
		EventStartDate:        datatypes.Date(in.StartDate),
		EventEndDate:          datatypes.Date(in.EndDate),
		EventStatus:           model.EventActive,
	}
	if err := e.store.Create(ctx, ev); err != nil {
		return nil, err
	}
	e.changed(ctx)
	return ev, nil
}

type RecordInput struct {
	EventID   uuid.UUID
	StudentID uuid.UUID
	Amount    int64
	Date      time.Time
	Method    paymentModel.PaymentMethod
	Note      string
}

// RecordPayment menambah event payment. Baris event dikunci supaya tidak
// bisa masuk bersamaan dengan Complete.
func (e *Engine) RecordPayment(ctx context.Context, in RecordInput) (*model.EventPaymentModel, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validation("event_payment_amount", "nominal harus lebih dari 0")
	}
	if in.Date.IsZero() {
		return nil, apperr.Validation("event_payment_date", "tanggal pembayaran wajib diisi")
	}
	if in.Method == "" {
		in.Method = paymentModel.MethodCash
	}
	if !in.Method.Valid() {
		return nil, apperr.Validation("event_payment_method", "metode pembayaran tidak dikenal: %s", in.Method)
	}
	st, err := e.students.Get(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperr.Validation("event_payment_student_id", "siswa tidak ditemukan")
	}

	p := &model.EventPaymentModel{
		EventPaymentEventID:   in.EventID,
		EventPaymentStudentID: st.StudentID,
		EventPaymentAmount:    in.Amount,
		EventPaymentDate:      in.Date,
		EventPaymentMethod:    in.Method,
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		p.EventPaymentNote = &note
	}

	err = e.store.Transaction(ctx, func(tx TxStore) error {
		ev, err := tx.LockEvent(ctx, in.EventID)
		if err != nil {
			return err
		}
		if ev == nil {
			return apperr.NotFound("Event tidak ditemukan")
		}
		if ev.IsCompleted() {
			return apperr.InvalidState("event sudah selesai, pembayaran tidak bisa ditambahkan")
		}
		return tx.AddPayment(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	e.changed(ctx)
	return p, nil
}

type CompleteResult struct {
	Summary        Summary
	SurplusPayment *paymentModel.PaymentModel // nil kalau tidak ada sisa
}

// Complete menutup event. Sisa dana (collected > target) dipindah ke kas
// reguler sebagai satu payment bersumber event, di transaksi yang sama.
// Event yang sudah selesai ditolak sehingga sisa tidak pernah tercatat dua kali.
func (e *Engine) Complete(ctx context.Context, id uuid.UUID, now time.Time) (*CompleteResult, error) {
	settings, err := e.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var (
		ev       *model.EventModel
		payments []model.EventPaymentModel
		surplus  *paymentModel.PaymentModel
	)
	err = e.store.Transaction(ctx, func(tx TxStore) error {
		var err error
		ev, err = tx.LockEvent(ctx, id)
		if err != nil {
			return err
		}
		if ev == nil {
			return apperr.NotFound("Event tidak ditemukan")
		}
		if ev.IsCompleted() {
			return apperr.InvalidState("event sudah selesai")
		}

		payments, err = tx.Payments(ctx, id)
		if err != nil {
			return err
		}
		collected := TotalCollected(id, payments)

		done := now
		ev.EventStatus = model.EventCompleted
		ev.EventCompletedAt = &done

		if extra := collected - ev.EventTargetAmount; extra > 0 {
			name := ev.EventName
			note := "Sisa dana event " + ev.EventName
			surplus = &paymentModel.PaymentModel{
				PaymentAmount:     extra,
				PaymentDate:       now,
				PaymentWeek:       tunggakan.CurrentWeek(now, settings),
				PaymentMethod:     paymentModel.MethodCash,
				PaymentNote:       &note,
				PaymentSource:     paymentModel.SourceEvent,
				PaymentSourceName: &name,
			}
			if err := tx.CreateLedgerPayment(ctx, surplus); err != nil {
				return err
			}
			sid := surplus.PaymentID
			ev.EventSurplusPaymentID = &sid
		}
		return tx.SaveEvent(ctx, ev)
	})
	if err != nil {
		return nil, err
	}

	if surplus != nil {
		log.Printf("[KAS] event %s selesai, sisa %d dipindah ke kas", ev.EventID, surplus.PaymentAmount)
	} else {
		log.Printf("[KAS] event %s selesai tanpa sisa dana", ev.EventID)
	}
	e.changed(ctx)

	roster, err := e.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return &CompleteResult{Summary: Summarize(*ev, payments, roster), SurplusPayment: surplus}, nil
}

func (e *Engine) Get(ctx context.Context, id uuid.UUID) (*Summary, error) {
	ev, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, apperr.NotFound("Event tidak ditemukan")
	}
	payments, err := e.store.Payments(ctx, id)
	if err != nil {
		return nil, err
	}
	roster, err := e.students.List(ctx)
	if err != nil {
		return nil, err
	}
	s := Summarize(*ev, payments, roster)
	return &s, nil
}

// List: status kosong → semua event.
func (e *Engine) List(ctx context.Context, status model.EventStatus) ([]Summary, error) {
	events, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := e.store.AllPayments(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := e.students.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(events))
	for _, ev := range events {
		if status != "" && ev.EventStatus != status {
			continue
		}
		out = append(out, Summarize(ev, payments, roster))
	}
	return out, nil
}

func (e *Engine) Payments(ctx context.Context, id uuid.UUID) ([]model.EventPaymentModel, error) {
	ev, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, apperr.NotFound("Event tidak ditemukan")
	}
	return e.store.Payments(ctx, id)
}

// AllEvents & AllPayments: bahan mentah untuk laporan dan export.
func (e *Engine) AllEvents(ctx context.Context) ([]model.EventModel, error) {
	return e.store.List(ctx)
}

func (e *Engine) AllPayments(ctx context.Context) ([]model.EventPaymentModel, error) {
	return e.store.AllPayments(ctx)
}

// Delete menghapus event beserta event_payments-nya. Payment sisa dana yang
// sudah masuk kas tidak ikut dihapus.
func (e *Engine) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := e.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Event tidak ditemukan")
	}
	e.changed(ctx)
	return nil
}

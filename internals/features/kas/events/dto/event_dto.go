package dto

import (
	"time"

	"github.com/google/uuid"

	m "kaskelas_backend/internals/features/kas/events/model"
	"kaskelas_backend/internals/features/kas/events/service"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	"kaskelas_backend/internals/helpers/dbtime"
)

/* =============== REQUESTS =============== */

type CreateEventRequest struct {
	EventName             string `json:"event_name"               validate:"required,min=1,max=160"`
	EventDescription      string `json:"event_description"        validate:"omitempty,max=2000"`
	EventTargetAmount     int64  `json:"event_target_amount"      validate:"required,gt=0"`
	EventPerStudentAmount int64  `json:"event_per_student_amount" validate:"omitempty,gte=0"`
	EventStartDate        string `json:"event_start_date"         validate:"required,datetime=2006-01-02"`
	EventEndDate          string `json:"event_end_date"           validate:"required,datetime=2006-01-02"`
}

func (r CreateEventRequest) ToInput() (service.CreateInput, error) {
	loc := dbtime.ClassLocation()
	start, err := dbtime.ParseDate(r.EventStartDate, loc)
	if err != nil {
		return service.CreateInput{}, err
	}
	end, err := dbtime.ParseDate(r.EventEndDate, loc)
	if err != nil {
		return service.CreateInput{}, err
	}
	return service.CreateInput{
		Name:             r.EventName,
		Description:      r.EventDescription,
		TargetAmount:     r.EventTargetAmount,
		PerStudentAmount: r.EventPerStudentAmount,
		StartDate:        start,
		EndDate:          end,
	}, nil
}

type RecordEventPaymentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    int64     `json:"amount"     validate:"required,gt=0"`
	Date      string    `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	Method    string    `json:"method"     validate:"omitempty,oneof=cash transfer"`
	Note      string    `json:"note"       validate:"omitempty,max=500"`
}

// ToInput: tanggal kosong → hari ini (zona kelas).
func (r RecordEventPaymentRequest) ToInput(eventID uuid.UUID, now time.Time) (service.RecordInput, error) {
	date := dbtime.StartOfDay(now)
	if r.Date != "" {
		d, err := dbtime.ParseDate(r.Date, dbtime.ClassLocation())
		if err != nil {
			return service.RecordInput{}, err
		}
		date = d
	}
	return service.RecordInput{
		EventID:   eventID,
		StudentID: r.StudentID,
		Amount:    r.Amount,
		Date:      date,
		Method:    paymentModel.PaymentMethod(r.Method),
		Note:      r.Note,
	}, nil
}

type ListEventQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=active completed"`
}

/* =============== RESPONSES =============== */

type EventResponse struct {
	EventID               uuid.UUID  `json:"event_id"`
	EventName             string     `json:"event_name"`
	EventDescription      string     `json:"event_description"`
	EventTargetAmount     int64      `json:"event_target_amount"`
	EventPerStudentAmount int64      `json:"event_per_student_amount"`
	EventStartDate        string     `json:"event_start_date"`
	EventEndDate          string     `json:"event_end_date"`
	EventStatus           string     `json:"event_status"`
	EventCompletedAt      *time.Time `json:"event_completed_at,omitempty"`
	EventSurplusPaymentID *uuid.UUID `json:"event_surplus_payment_id,omitempty"`
	EventCreatedAt        time.Time  `json:"event_created_at"`
}

func FromModel(e m.EventModel) EventResponse {
	return EventResponse{
		EventID:               e.EventID,
		EventName:             e.EventName,
		EventDescription:      e.EventDescription,
		EventTargetAmount:     e.EventTargetAmount,
		EventPerStudentAmount: e.EventPerStudentAmount,
		EventStartDate:        dbtime.DateKey(time.Time(e.EventStartDate)),
		EventEndDate:          dbtime.DateKey(time.Time(e.EventEndDate)),
		EventStatus:           string(e.EventStatus),
		EventCompletedAt:      e.EventCompletedAt,
		EventSurplusPaymentID: e.EventSurplusPaymentID,
		EventCreatedAt:        e.EventCreatedAt,
	}
}

type StudentPaidAmount struct {
	StudentID uuid.UUID `json:"student_id"`
	Amount    int64     `json:"amount"`
}

type EventSummaryResponse struct {
	EventResponse
	TotalCollected  int64                   `json:"total_collected"`
	Remaining       int64                   `json:"remaining"`
	Surplus         int64                   `json:"surplus"`
	ProgressPercent float64                 `json:"progress_percent"`
	PaymentCount    int                     `json:"payment_count"`
	StudentsPaid    []StudentPaidAmount     `json:"students_paid"`
	UnpaidStudents  []service.UnpaidStudent `json:"unpaid_students"`
}

func FromSummary(s service.Summary) EventSummaryResponse {
	paid := make([]StudentPaidAmount, 0, len(s.StudentsPaid))
	for _, id := range s.StudentsPaid {
		paid = append(paid, StudentPaidAmount{StudentID: id, Amount: s.PaidByStudent[id]})
	}
	return EventSummaryResponse{
		EventResponse:   FromModel(s.Event),
		TotalCollected:  s.TotalCollected,
		Remaining:       s.Remaining,
		Surplus:         s.Surplus,
		ProgressPercent: s.ProgressPercent.InexactFloat64(),
		PaymentCount:    s.PaymentCount,
		StudentsPaid:    paid,
		UnpaidStudents:  s.UnpaidStudents,
	}
}

func FromSummaries(list []service.Summary) []EventSummaryResponse {
	out := make([]EventSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSummary(s))
	}
	return out
}

type EventPaymentResponse struct {
	EventPaymentID        uuid.UUID `json:"event_payment_id"`
	EventPaymentEventID   uuid.UUID `json:"event_payment_event_id"`
	EventPaymentStudentID uuid.UUID `json:"event_payment_student_id"`
	EventPaymentAmount    int64     `json:"event_payment_amount"`
	EventPaymentDate      string    `json:"event_payment_date"`
	EventPaymentMethod    string    `json:"event_payment_method"`
	EventPaymentNote      *string   `json:"event_payment_note,omitempty"`
}

func FromPayment(p m.EventPaymentModel) EventPaymentResponse {
	return EventPaymentResponse{
		EventPaymentID:        p.EventPaymentID,
		EventPaymentEventID:   p.EventPaymentEventID,
		EventPaymentStudentID: p.EventPaymentStudentID,
		EventPaymentAmount:    p.EventPaymentAmount,
		EventPaymentDate:      dbtime.DateKey(p.EventPaymentDate.In(dbtime.ClassLocation())),
		EventPaymentMethod:    string(p.EventPaymentMethod),
		EventPaymentNote:      p.EventPaymentNote,
	}
}

func FromPayments(list []m.EventPaymentModel) []EventPaymentResponse {
	out := make([]EventPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

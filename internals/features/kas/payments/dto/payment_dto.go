package dto

import (
	"time"

	"github.com/google/uuid"

	m "kaskelas_backend/internals/features/kas/payments/model"
	"kaskelas_backend/internals/features/kas/payments/service"
	"kaskelas_backend/internals/helpers/dbtime"
)

/* =============== REQUESTS =============== */

type CreatePaymentRequest struct {
	PaymentAmount     int64      `json:"payment_amount"      validate:"required,gt=0"`
	PaymentDate       string     `json:"payment_date"        validate:"required,datetime=2006-01-02"`
	PaymentMethod     string     `json:"payment_method"      validate:"omitempty,oneof=cash transfer"`
	PaymentNote       string     `json:"payment_note"        validate:"omitempty,max=500"`
	PaymentSource     string     `json:"payment_source"      validate:"omitempty,oneof=regular custom"`
	PaymentStudentID  *uuid.UUID `json:"payment_student_id"  validate:"required_if=PaymentSource regular"`
	PaymentSourceName string     `json:"payment_source_name" validate:"required_if=PaymentSource custom,max=160"`
}

func (r CreatePaymentRequest) ToInput() (service.AddInput, error) {
	d, err := dbtime.ParseDate(r.PaymentDate, dbtime.ClassLocation())
	if err != nil {
		return service.AddInput{}, err
	}
	return service.AddInput{
		Amount:     r.PaymentAmount,
		Date:       d,
		Method:     m.PaymentMethod(r.PaymentMethod),
		Note:       r.PaymentNote,
		Source:     m.PaymentSource(r.PaymentSource),
		StudentID:  r.PaymentStudentID,
		SourceName: r.PaymentSourceName,
	}, nil
}

// Bulk: iuran beberapa siswa sekaligus (tanggal & metode sama)
type BulkCreatePaymentRequest struct {
	PaymentDate   string      `json:"payment_date"   validate:"required,datetime=2006-01-02"`
	PaymentMethod string      `json:"payment_method" validate:"omitempty,oneof=cash transfer"`
	PaymentAmount int64       `json:"payment_amount" validate:"required,gt=0"`
	PaymentNote   string      `json:"payment_note"   validate:"omitempty,max=500"`
	StudentIDs    []uuid.UUID `json:"student_ids"    validate:"required,min=1,dive,required"`
}

func (r BulkCreatePaymentRequest) ToInputs(date time.Time) []service.AddInput {
	out := make([]service.AddInput, 0, len(r.StudentIDs))
	for i := range r.StudentIDs {
		out = append(out, service.AddInput{
			Amount:    r.PaymentAmount,
			Date:      date,
			Method:    m.PaymentMethod(r.PaymentMethod),
			Note:      r.PaymentNote,
			Source:    m.SourceRegular,
			StudentID: &r.StudentIDs[i],
		})
	}
	return out
}

type ListPaymentQuery struct {
	Q      string `query:"q"`
	Method string `query:"method" validate:"omitempty,oneof=cash transfer"`
	Source string `query:"source" validate:"omitempty,oneof=regular custom event"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID         uuid.UUID  `json:"payment_id"`
	PaymentAmount     int64      `json:"payment_amount"`
	PaymentDate       string     `json:"payment_date"`
	PaymentWeek       int        `json:"payment_week"`
	PaymentMethod     string     `json:"payment_method"`
	PaymentNote       *string    `json:"payment_note,omitempty"`
	PaymentSource     string     `json:"payment_source"`
	PaymentStudentID  *uuid.UUID `json:"payment_student_id,omitempty"`
	PaymentSourceName *string    `json:"payment_source_name,omitempty"`
	StudentAbsen      int        `json:"student_absen,omitempty"`
	StudentFound      bool       `json:"student_found"`
	DisplayName       string     `json:"display_name"`
	PaymentCreatedAt  time.Time  `json:"payment_created_at"`
}

func FromRow(r service.PaymentRow) PaymentResponse {
	return PaymentResponse{
		PaymentID:         r.PaymentID,
		PaymentAmount:     r.PaymentAmount,
		PaymentDate:       dbtime.DateKey(r.PaymentDate.In(dbtime.ClassLocation())),
		PaymentWeek:       r.PaymentWeek,
		PaymentMethod:     string(r.PaymentMethod),
		PaymentNote:       r.PaymentNote,
		PaymentSource:     string(r.PaymentSource),
		PaymentStudentID:  r.PaymentStudentID,
		PaymentSourceName: r.PaymentSourceName,
		StudentAbsen:      r.StudentAbsen,
		StudentFound:      r.StudentFound,
		DisplayName:       r.DisplayName,
		PaymentCreatedAt:  r.PaymentCreatedAt,
	}
}

func FromRows(rows []service.PaymentRow) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRow(r))
	}
	return out
}

// FromModel: untuk response create (siswa sudah pasti ada)
func FromModel(p m.PaymentModel, displayName string) PaymentResponse {
	return FromRow(service.PaymentRow{
		PaymentModel: p,
		StudentFound: p.PaymentStudentID != nil,
		DisplayName:  displayName,
	})
}

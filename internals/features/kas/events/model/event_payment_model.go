package model

import (
	"time"

	"github.com/google/uuid"

	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
)

type EventPaymentModel struct {
	EventPaymentID uuid.UUID `gorm:"column:event_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_payment_id"`

	EventPaymentEventID   uuid.UUID `gorm:"column:event_payment_event_id;type:uuid;not null;index:idx_event_payments_event" json:"event_payment_event_id"`
	EventPaymentStudentID uuid.UUID `gorm:"column:event_payment_student_id;type:uuid;not null;index"                       json:"event_payment_student_id"`

	EventPaymentAmount int64                      `gorm:"column:event_payment_amount;not null;check:event_payment_amount > 0" json:"event_payment_amount"`
	EventPaymentDate   time.Time                  `gorm:"column:event_payment_date;not null"                                  json:"event_payment_date"`
	EventPaymentMethod paymentModel.PaymentMethod `gorm:"column:event_payment_method;type:varchar(16);not null"               json:"event_payment_method"`
	EventPaymentNote   *string                    `gorm:"column:event_payment_note;type:text"                                 json:"event_payment_note,omitempty"`

	EventPaymentCreatedAt time.Time `gorm:"column:event_payment_created_at;autoCreateTime" json:"event_payment_created_at"`
}

func (EventPaymentModel) TableName() string { return "event_payments" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed" // terminal
)

// EventModel: penggalangan dana dengan target tetap.
// Total terkumpul & daftar siswa yang sudah bayar TIDAK disimpan di sini;
// selalu dihitung dari event_payments (lihat service.Summarize).
type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventName        string `gorm:"column:event_name;type:varchar(160);not null" json:"event_name"`
	EventDescription string `gorm:"column:event_description;type:text"          json:"event_description"`

	EventTargetAmount int64 `gorm:"column:event_target_amount;not null;check:event_target_amount > 0" json:"event_target_amount"`
	// Snapshot ceil(target / jumlah siswa aktif) saat event dibuat
	EventPerStudentAmount int64 `gorm:"column:event_per_student_amount;not null" json:"event_per_student_amount"`

	EventStartDate datatypes.Date `gorm:"column:event_start_date;not null" json:"event_start_date"`
	EventEndDate   datatypes.Date `gorm:"column:event_end_date;not null"   json:"event_end_date"`

	EventStatus      EventStatus `gorm:"column:event_status;type:varchar(16);not null;default:active;index" json:"event_status"`
	EventCompletedAt *time.Time  `gorm:"column:event_completed_at"                                          json:"event_completed_at,omitempty"`

	// Payment reguler hasil pemindahan sisa dana (kalau ada)
	EventSurplusPaymentID *uuid.UUID `gorm:"column:event_surplus_payment_id;type:uuid" json:"event_surplus_payment_id,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
}

func (EventModel) TableName() string { return "events" }

func (e EventModel) IsCompleted() bool { return e.EventStatus == EventCompleted }

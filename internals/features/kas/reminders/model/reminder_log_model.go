package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ReminderTrigger string

const (
	TriggerManual    ReminderTrigger = "manual"
	TriggerScheduled ReminderTrigger = "scheduled"
)

// ReminderLogModel: riwayat satu kali pengiriman pengingat tunggakan.
type ReminderLogModel struct {
	ReminderLogID uuid.UUID `gorm:"column:reminder_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reminder_log_id"`

	ReminderLogTrigger  ReminderTrigger `gorm:"column:reminder_log_trigger;type:varchar(16);not null" json:"reminder_log_trigger"`
	ReminderLogMinWeeks int             `gorm:"column:reminder_log_min_weeks;not null"              json:"reminder_log_min_weeks"`
	ReminderLogWeek     int             `gorm:"column:reminder_log_week;not null"                   json:"reminder_log_week"`

	ReminderLogSent   int `gorm:"column:reminder_log_sent;not null;default:0"   json:"reminder_log_sent"`
	ReminderLogFailed int `gorm:"column:reminder_log_failed;not null;default:0" json:"reminder_log_failed"`

	ReminderLogStudentIDs pq.StringArray `gorm:"column:reminder_log_student_ids;type:text[]" json:"reminder_log_student_ids"`
	// Snapshot kandidat + hasil per siswa
	ReminderLogPayload datatypes.JSON `gorm:"column:reminder_log_payload;type:jsonb" json:"reminder_log_payload"`

	ReminderLogCreatedAt time.Time `gorm:"column:reminder_log_created_at;autoCreateTime" json:"reminder_log_created_at"`
}

func (ReminderLogModel) TableName() string { return "reminder_logs" }

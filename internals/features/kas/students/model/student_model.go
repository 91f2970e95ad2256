package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
	StudentAlumni   StudentStatus = "alumni"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentAlumni:
		return true
	}
	return false
}

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentName   string        `gorm:"column:student_name;type:varchar(120);not null"            json:"student_name"`
	StudentAbsen  int           `gorm:"column:student_absen;not null;index:idx_students_absen"   json:"student_absen"`
	StudentStatus StudentStatus `gorm:"column:student_status;type:varchar(16);not null;default:active" json:"student_status"`

	// Nomor WA opsional (format 08xx / 62xx)
	StudentPhone                *string `gorm:"column:student_phone;type:varchar(32)"                           json:"student_phone,omitempty"`
	// Tanpa tag default: false (opt-out) harus ikut tersimpan saat Create.
	StudentNotificationsEnabled bool `gorm:"column:student_notifications_enabled;not null" json:"student_notifications_enabled"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (s StudentModel) IsActive() bool { return s.StudentStatus == StudentActive }

// PhoneNumber: "" kalau tidak ada
func (s StudentModel) PhoneNumber() string {
	if s.StudentPhone == nil {
		return ""
	}
	return *s.StudentPhone
}

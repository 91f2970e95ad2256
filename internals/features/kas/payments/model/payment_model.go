package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == MethodCash || m == MethodTransfer
}

type PaymentSource string

const (
	SourceRegular PaymentSource = "regular" // iuran mingguan siswa
	SourceCustom  PaymentSource = "custom"  // pemasukan lain (non siswa)
	SourceEvent   PaymentSource = "event"   // sisa dana event yang dipindah ke kas
)

func (s PaymentSource) Valid() bool {
	switch s {
	case SourceRegular, SourceCustom, SourceEvent:
		return true
	}
	return false
}

// PaymentModel: entri kas reguler. Tidak pernah di-update; koreksi = hapus + tambah.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentAmount int64     `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentDate   time.Time `gorm:"column:payment_date;not null;index"                      json:"payment_date"`

	// Minggu ke-N saat dicatat; tidak dihitung ulang kalau start_date berubah
	PaymentWeek int `gorm:"column:payment_week;not null;index" json:"payment_week"`

	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(16);not null" json:"payment_method"`
	PaymentNote   *string       `gorm:"column:payment_note;type:text"                  json:"payment_note,omitempty"`
	PaymentSource PaymentSource `gorm:"column:payment_source;type:varchar(16);not null;default:regular;index" json:"payment_source"`

	// FK lunak (tanpa constraint): siswa boleh sudah dihapus
	PaymentStudentID  *uuid.UUID `gorm:"column:payment_student_id;type:uuid;index" json:"payment_student_id,omitempty"`
	PaymentSourceName *string    `gorm:"column:payment_source_name;type:varchar(160)" json:"payment_source_name,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }

// BelongsTo: true kalau pembayaran tercatat atas nama siswa tsb.
func (p PaymentModel) BelongsTo(studentID uuid.UUID) bool {
	return p.PaymentStudentID != nil && *p.PaymentStudentID == studentID
}

func (p PaymentModel) SourceName() string {
	if p.PaymentSourceName == nil {
		return ""
	}
	return *p.PaymentSourceName
}

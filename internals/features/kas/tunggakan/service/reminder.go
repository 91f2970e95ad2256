package service

import (
	"strings"

	"github.com/google/uuid"
)

// ReminderCandidate: data yang diserahkan ke pengirim notifikasi.
// Format pesan bukan urusan paket ini.
type ReminderCandidate struct {
	StudentID   uuid.UUID `json:"student_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	WeeksLate   int       `json:"weeks_late"`
	AmountOwed  int64     `json:"amount_owed"`
}

// ReminderCandidates memilih siswa dengan tunggakan >= minWeeks*weeklyAmount
// yang punya nomor WA dan notifikasinya aktif.
func ReminderCandidates(rows []StudentArrears, minWeeks int, weeklyAmount int64) []ReminderCandidate {
	if minWeeks < 1 {
		minWeeks = 1
	}
	threshold := int64(minWeeks) * weeklyAmount
	out := make([]ReminderCandidate, 0)
	for _, r := range rows {
		if r.AmountOwed < threshold {
			continue
		}
		phone := strings.TrimSpace(r.PhoneNumber)
		if phone == "" || !r.NotificationEnabled {
			continue
		}
		out = append(out, ReminderCandidate{
			StudentID:   r.StudentID,
			Name:        r.Name,
			PhoneNumber: phone,
			WeeksLate:   r.WeeksLate,
			AmountOwed:  r.AmountOwed,
		})
	}
	return out
}

package service

import (
	"sort"

	"github.com/google/uuid"

	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

type ArrearsStatus string

const (
	StatusLunas     ArrearsStatus = "lunas"     // tepat sesuai kewajiban
	StatusKurang    ArrearsStatus = "kurang"    // ada tunggakan, belum terlambat
	StatusTerlambat ArrearsStatus = "terlambat" // tunggakan >= batas
	StatusLebih     ArrearsStatus = "lebih"     // bayar di muka
)

type StudentArrears struct {
	StudentID           uuid.UUID     `json:"student_id"`
	Name                string        `json:"name"`
	Absen               int           `json:"absen"`
	PhoneNumber         string        `json:"phone_number,omitempty"`
	NotificationEnabled bool          `json:"notification_enabled"`
	Status              ArrearsStatus `json:"status"`
	Arrears
}

type RosterSummary struct {
	CurrentWeek   int   `json:"current_week"`
	ActiveCount   int   `json:"active_count"`
	LateCount     int   `json:"late_count"`
	CreditCount   int   `json:"credit_count"`
	TotalOwed     int64 `json:"total_owed"` // hanya bagian positif
	TotalPaid     int64 `json:"total_paid"`
	TotalExpected int64 `json:"total_expected"`
}

type RosterArrearsResult struct {
	Summary RosterSummary    `json:"summary"`
	Rows    []StudentArrears `json:"rows"`
}

func statusOf(a Arrears) ArrearsStatus {
	switch {
	case a.IsLate:
		return StatusTerlambat
	case a.AmountOwed > 0:
		return StatusKurang
	case a.AmountOwed < 0:
		return StatusLebih
	default:
		return StatusLunas
	}
}

// SortRoster: urut absen, lalu nama (absen tidak dijamin unik).
func SortRoster(students []studentModel.StudentModel) {
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].StudentAbsen != students[j].StudentAbsen {
			return students[i].StudentAbsen < students[j].StudentAbsen
		}
		return students[i].StudentName < students[j].StudentName
	})
}

// RosterArrears menghitung tunggakan semua siswa aktif pada currentWeek.
func RosterArrears(students []studentModel.StudentModel, payments []paymentModel.PaymentModel, currentWeek int, st settingService.Settings) RosterArrearsResult {
	active := make([]studentModel.StudentModel, 0, len(students))
	for _, s := range students {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	SortRoster(active)

	paid := PaidByStudent(payments)
	res := RosterArrearsResult{
		Summary: RosterSummary{CurrentWeek: currentWeek, ActiveCount: len(active)},
		Rows:    make([]StudentArrears, 0, len(active)),
	}
	for _, s := range active {
		a := arrearsFromPaid(paid[s.StudentID], currentWeek, st.WeeklyAmount, st.LateThreshold)
		res.Rows = append(res.Rows, StudentArrears{
			StudentID:           s.StudentID,
			Name:                s.StudentName,
			Absen:               s.StudentAbsen,
			PhoneNumber:         s.PhoneNumber(),
			NotificationEnabled: s.StudentNotificationsEnabled,
			Status:              statusOf(a),
			Arrears:             a,
		})
		res.Summary.TotalPaid += a.TotalPaid
		res.Summary.TotalExpected += a.Expected
		if a.AmountOwed > 0 {
			res.Summary.TotalOwed += a.AmountOwed
		}
		if a.AmountOwed < 0 {
			res.Summary.CreditCount++
		}
		if a.IsLate {
			res.Summary.LateCount++
		}
	}
	return res
}

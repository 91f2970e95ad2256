package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kaskelas_backend/internals/features/kas/events/model"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

type UnpaidStudent struct {
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
	Absen     int       `json:"absen"`
}

// Summary: keadaan event yang diturunkan dari log event_payments.
type Summary struct {
	Event           model.EventModel
	TotalCollected  int64
	Remaining       int64 // >= 0
	Surplus         int64 // >= 0
	ProgressPercent decimal.Decimal
	PaymentCount    int
	StudentsPaid    []uuid.UUID
	PaidByStudent   map[uuid.UUID]int64
	UnpaidStudents  []UnpaidStudent
}

// TotalCollected selalu = jumlah nominal event payment milik event.
func TotalCollected(eventID uuid.UUID, payments []model.EventPaymentModel) int64 {
	var total int64
	for _, p := range payments {
		if p.EventPaymentEventID == eventID {
			total += p.EventPaymentAmount
		}
	}
	return total
}

// ProgressPercent: collected/target*100, dua desimal. Bisa > 100.
func ProgressPercent(collected, target int64) decimal.Decimal {
	if target <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(collected).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(target)).
		Round(2)
}

// Summarize murni: payments boleh berisi milik event lain (diabaikan).
// UnpaidStudents = roster aktif saat ini dikurangi himpunan yang sudah bayar.
func Summarize(ev model.EventModel, payments []model.EventPaymentModel, roster []studentModel.StudentModel) Summary {
	own := make([]model.EventPaymentModel, 0, len(payments))
	for _, p := range payments {
		if p.EventPaymentEventID == ev.EventID {
			own = append(own, p)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].EventPaymentDate.Before(own[j].EventPaymentDate)
	})

	s := Summary{
		Event:         ev,
		PaidByStudent: make(map[uuid.UUID]int64),
		StudentsPaid:  []uuid.UUID{},
		PaymentCount:  len(own),
	}
	for _, p := range own {
		if _, seen := s.PaidByStudent[p.EventPaymentStudentID]; !seen {
			s.StudentsPaid = append(s.StudentsPaid, p.EventPaymentStudentID)
		}
		s.PaidByStudent[p.EventPaymentStudentID] += p.EventPaymentAmount
		s.TotalCollected += p.EventPaymentAmount
	}

	if diff := ev.EventTargetAmount - s.TotalCollected; diff > 0 {
		s.Remaining = diff
	} else {
		s.Surplus = -diff
	}
	s.ProgressPercent = ProgressPercent(s.TotalCollected, ev.EventTargetAmount)

	active := make([]studentModel.StudentModel, 0, len(roster))
	for _, st := range roster {
		if st.IsActive() {
			active = append(active, st)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].StudentAbsen != active[j].StudentAbsen {
			return active[i].StudentAbsen < active[j].StudentAbsen
		}
		return active[i].StudentName < active[j].StudentName
	})
	s.UnpaidStudents = []UnpaidStudent{}
	for _, st := range active {
		if _, paid := s.PaidByStudent[st.StudentID]; paid {
			continue
		}
		s.UnpaidStudents = append(s.UnpaidStudents, UnpaidStudent{
			StudentID: st.StudentID,
			Name:      st.StudentName,
			Absen:     st.StudentAbsen,
		})
	}
	return s
}

// PerStudentAmount: ceil(target / n). n <= 0 → 0.
func PerStudentAmount(target int64, n int) int64 {
	if n <= 0 || target <= 0 {
		return 0
	}
	return (target + int64(n) - 1) / int64(n)
}

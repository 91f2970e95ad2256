package service

import (
	"github.com/google/uuid"

	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
)

// Arrears: posisi saldo satu siswa pada minggu tertentu.
type Arrears struct {
	TotalPaid  int64 `json:"total_paid"`
	Expected   int64 `json:"expected"`
	AmountOwed int64 `json:"amount_owed"` // bertanda; negatif = bayar di muka
	IsLate     bool  `json:"is_late"`
	WeeksLate  int   `json:"weeks_late"`
}

// ComputeArrears menghitung tunggakan model saldo berjalan:
// semua pembayaran siswa dijumlah tanpa melihat minggunya, lalu dibandingkan
// dengan currentWeek * weeklyAmount.
func ComputeArrears(studentID uuid.UUID, payments []paymentModel.PaymentModel, currentWeek int, weeklyAmount int64, lateThreshold int) Arrears {
	var paid int64
	for _, p := range payments {
		if p.BelongsTo(studentID) {
			paid += p.PaymentAmount
		}
	}
	return arrearsFromPaid(paid, currentWeek, weeklyAmount, lateThreshold)
}

func arrearsFromPaid(paid int64, currentWeek int, weeklyAmount int64, lateThreshold int) Arrears {
	if currentWeek < 0 {
		currentWeek = 0
	}
	expected := int64(currentWeek) * weeklyAmount
	owed := expected - paid
	return Arrears{
		TotalPaid:  paid,
		Expected:   expected,
		AmountOwed: owed,
		IsLate:     owed >= int64(lateThreshold)*weeklyAmount,
		WeeksLate:  WeeksLate(owed, weeklyAmount),
	}
}

// WeeksLate: jumlah minggu tertunggak versi saldo berjalan.
// Ini satu-satunya definisi "minggu terlambat" di aplikasi.
func WeeksLate(amountOwed, weeklyAmount int64) int {
	if amountOwed <= 0 || weeklyAmount <= 0 {
		return 0
	}
	return int(amountOwed / weeklyAmount)
}

// PaidByStudent menjumlah pembayaran per siswa dalam satu lintasan.
func PaidByStudent(payments []paymentModel.PaymentModel) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64)
	for _, p := range payments {
		if p.PaymentStudentID != nil {
			out[*p.PaymentStudentID] += p.PaymentAmount
		}
	}
	return out
}

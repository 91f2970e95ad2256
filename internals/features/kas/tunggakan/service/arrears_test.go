package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

func pay(student uuid.UUID, amount int64, at time.Time, start time.Time) paymentModel.PaymentModel {
	id := student
	return paymentModel.PaymentModel{
		PaymentID:        uuid.New(),
		PaymentAmount:    amount,
		PaymentDate:      at,
		PaymentWeek:      WeekIndex(at, start),
		PaymentMethod:    paymentModel.MethodCash,
		PaymentSource:    paymentModel.SourceRegular,
		PaymentStudentID: &id,
	}
}

func TestComputeArrearsZeroPayments(t *testing.T) {
	sid := uuid.New()
	for week := 0; week <= 10; week++ {
		got := ComputeArrears(sid, nil, week, 2000, 4)
		assert.Equal(t, int64(week)*2000, got.AmountOwed)
		assert.Equal(t, int64(week)*2000 >= 4*2000, got.IsLate)
		assert.Equal(t, week, got.WeeksLate)
	}
}

func TestComputeArrearsScenarioStartDate(t *testing.T) {
	start := date("2025-10-27")
	now := date("2025-11-17")
	week := WeekIndex(now, start)
	require.Equal(t, 4, week)

	got := ComputeArrears(uuid.New(), nil, week, 2000, 4)
	assert.Equal(t, int64(8000), got.AmountOwed)
	assert.True(t, got.IsLate)
}

func TestComputeArrearsPartialPayments(t *testing.T) {
	start := date("2025-10-27")
	sid := uuid.New()
	payments := []paymentModel.PaymentModel{
		pay(sid, 2000, start, start),                  // minggu 1
		pay(sid, 2000, start.AddDate(0, 0, 10), start), // minggu 3
		pay(uuid.New(), 50000, start, start),           // siswa lain
	}

	got := ComputeArrears(sid, payments, 4, 2000, 4)
	assert.Equal(t, int64(4000), got.TotalPaid)
	assert.Equal(t, int64(4000), got.AmountOwed)
	assert.False(t, got.IsLate)
	assert.Equal(t, 2, got.WeeksLate)
}

func TestComputeArrearsOverpaymentIsNegative(t *testing.T) {
	start := date("2025-10-27")
	sid := uuid.New()
	payments := []paymentModel.PaymentModel{pay(sid, 10000, start, start)}

	got := ComputeArrears(sid, payments, 2, 2000, 4)
	assert.Equal(t, int64(-6000), got.AmountOwed)
	assert.False(t, got.IsLate)
	assert.Equal(t, 0, got.WeeksLate)
}

func TestComputeArrearsGracePeriod(t *testing.T) {
	sid := uuid.New()
	got := ComputeArrears(sid, nil, 0, 2000, 4)
	assert.Equal(t, int64(0), got.AmountOwed)

	got = ComputeArrears(sid, nil, -3, 2000, 4)
	assert.Equal(t, int64(0), got.Expected)
	assert.LessOrEqual(t, got.AmountOwed, int64(0))
}

func TestComputeArrearsMonotoneInPayments(t *testing.T) {
	start := date("2025-10-27")
	sid := uuid.New()
	var payments []paymentModel.PaymentModel
	prev := ComputeArrears(sid, payments, 8, 2000, 4).AmountOwed
	for i, amount := range []int64{500, 2000, 1, 7000, 2000, 30000} {
		payments = append(payments, pay(sid, amount, start.AddDate(0, 0, i*3), start))
		owed := ComputeArrears(sid, payments, 8, 2000, 4).AmountOwed
		assert.LessOrEqual(t, owed, prev)
		prev = owed
	}
}

func TestRosterArrearsSkipsInactiveAndSorts(t *testing.T) {
	start := date("2025-10-27")
	st := settingService.Settings{StartDate: start, WeeklyAmount: 2000, LateThreshold: 4}
	phone := "08123"
	a := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Budi", StudentAbsen: 2, StudentStatus: studentModel.StudentActive, StudentPhone: &phone, StudentNotificationsEnabled: true}
	b := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Ani", StudentAbsen: 1, StudentStatus: studentModel.StudentActive}
	c := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Caca", StudentAbsen: 3, StudentStatus: studentModel.StudentAlumni}

	payments := []paymentModel.PaymentModel{
		pay(b.StudentID, 8000, start, start),
		pay(c.StudentID, 2000, start, start),
	}

	res := RosterArrears([]studentModel.StudentModel{a, b, c}, payments, 4, st)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Ani", res.Rows[0].Name)
	assert.Equal(t, StatusLunas, res.Rows[0].Status)
	assert.Equal(t, "Budi", res.Rows[1].Name)
	assert.Equal(t, StatusTerlambat, res.Rows[1].Status)

	assert.Equal(t, 1, res.Summary.LateCount)
	assert.Equal(t, int64(8000), res.Summary.TotalOwed)
	assert.Equal(t, int64(8000), res.Summary.TotalPaid)

	cands := ReminderCandidates(res.Rows, 4, 2000)
	require.Len(t, cands, 1)
	assert.Equal(t, a.StudentID, cands[0].StudentID)
	assert.Equal(t, 4, cands[0].WeeksLate)
}

func TestReminderCandidatesRequirePhoneAndOptIn(t *testing.T) {
	rows := []StudentArrears{
		{Name: "tanpa nomor", NotificationEnabled: true, Arrears: Arrears{AmountOwed: 10000}},
		{Name: "opt out", PhoneNumber: "0811", NotificationEnabled: false, Arrears: Arrears{AmountOwed: 10000}},
		{Name: "kurang dikit", PhoneNumber: "0812", NotificationEnabled: true, Arrears: Arrears{AmountOwed: 3999}},
		{Name: "kena", PhoneNumber: " 0813 ", NotificationEnabled: true, Arrears: Arrears{AmountOwed: 4000, WeeksLate: 2}},
	}

	got := ReminderCandidates(rows, 2, 2000)
	require.Len(t, got, 1)
	assert.Equal(t, "kena", got[0].Name)
	assert.Equal(t, "0813", got[0].PhoneNumber)
}

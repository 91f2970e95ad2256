package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "kaskelas_backend/internals/features/kas/events/model"
	expenseModel "kaskelas_backend/internals/features/kas/expenses/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return t
}

func regular(sid uuid.UUID, amount int64, date string, week int) paymentModel.PaymentModel {
	id := sid
	return paymentModel.PaymentModel{
		PaymentID: uuid.New(), PaymentStudentID: &id, PaymentAmount: amount,
		PaymentDate: day(date), PaymentWeek: week, PaymentSource: paymentModel.SourceRegular,
	}
}

func custom(amount int64, date string, week int) paymentModel.PaymentModel {
	name := "Donasi"
	return paymentModel.PaymentModel{
		PaymentID: uuid.New(), PaymentAmount: amount, PaymentDate: day(date),
		PaymentWeek: week, PaymentSource: paymentModel.SourceCustom, PaymentSourceName: &name,
	}
}

func active(name string, absen int) studentModel.StudentModel {
	return studentModel.StudentModel{StudentID: uuid.New(), StudentName: name, StudentAbsen: absen, StudentStatus: studentModel.StudentActive}
}

var settings = settingService.Settings{StartDate: day("2025-10-27"), WeeklyAmount: 2000, LateThreshold: 4}

func TestProjectionsTolerateEmptyInput(t *testing.T) {
	now := day("2025-11-17")
	assert.Empty(t, IncomeExpenseSeries(nil, nil, now, 7))
	assert.Empty(t, ExpenseByCategory(nil, now, 30))
	assert.Len(t, WeeklyTotals(nil, 4), 4)
	assert.Empty(t, WeeklyTotals(nil, 0))
	assert.Empty(t, PaymentHeatmap(nil, nil, 4).Rows)
	assert.Empty(t, DebtTrend(nil, nil, settings, 0))
	d := DashboardSummary(nil, nil, nil, nil, nil, settings, 4)
	assert.Equal(t, int64(0), d.Balance)
}

func TestIncomeExpenseSeriesWindow(t *testing.T) {
	ani := active("Ani", 1)
	payments := []paymentModel.PaymentModel{
		regular(ani.StudentID, 2000, "2025-11-10", 3),
		regular(ani.StudentID, 2000, "2025-11-17", 4),
		custom(5000, "2025-11-17", 4),
	}
	expenses := []expenseModel.ExpenseModel{
		{ExpenseAmount: 3000, ExpenseDate: day("2025-11-15"), ExpenseCategory: expenseModel.CategorySupplies},
	}
	now := day("2025-11-17").Add(10 * time.Hour)

	got := IncomeExpenseSeries(payments, expenses, now, 7)
	require.Len(t, got, 2)
	assert.Equal(t, DailyPoint{Date: "2025-11-15", Expense: 3000}, got[0])
	assert.Equal(t, DailyPoint{Date: "2025-11-17", Income: 7000}, got[1])

	all := IncomeExpenseSeries(payments, expenses, now, 0)
	assert.Len(t, all, 3)
	assert.Equal(t, "2025-11-10", all[0].Date)
}

func TestExpenseByCategoryPercent(t *testing.T) {
	expenses := []expenseModel.ExpenseModel{
		{ExpenseAmount: 1000, ExpenseDate: day("2025-11-10"), ExpenseCategory: expenseModel.CategoryCleanliness},
		{ExpenseAmount: 2000, ExpenseDate: day("2025-11-11"), ExpenseCategory: expenseModel.CategorySupplies},
		{ExpenseAmount: 9000, ExpenseDate: day("2025-01-01"), ExpenseCategory: expenseModel.CategoryEvent},
	}
	got := ExpenseByCategory(expenses, day("2025-11-17"), 30)
	require.Len(t, got, 2)
	assert.Equal(t, expenseModel.CategorySupplies, got[0].Category)
	assert.Equal(t, "66.67", got[0].Percent.String())
	assert.Equal(t, "33.33", got[1].Percent.String())
}

func TestWeeklyTotalsShowsLastTwelveRegularOnly(t *testing.T) {
	sid := uuid.New()
	payments := []paymentModel.PaymentModel{
		regular(sid, 2000, "2025-10-27", 1),
		regular(sid, 2000, "2026-01-19", 13),
		regular(sid, 4000, "2026-01-26", 14),
		custom(9000, "2026-01-26", 14),
	}
	got := WeeklyTotals(payments, 14)
	require.Len(t, got, 12)
	assert.Equal(t, 3, got[0].Week)
	assert.Equal(t, 14, got[11].Week)
	assert.Equal(t, int64(4000), got[11].Total)
	assert.Equal(t, 1, got[11].Count)
	assert.Equal(t, int64(2000), got[10].Total)
}

func TestPaymentHeatmap(t *testing.T) {
	ani, budi := active("Ani", 1), active("Budi", 2)
	gone := studentModel.StudentModel{StudentID: uuid.New(), StudentStatus: studentModel.StudentAlumni}
	payments := []paymentModel.PaymentModel{
		regular(ani.StudentID, 2000, "2025-10-27", 1),
		regular(ani.StudentID, 2000, "2025-11-10", 3),
		regular(ani.StudentID, 2000, "2025-11-10", 3),
	}
	hm := PaymentHeatmap([]studentModel.StudentModel{budi, gone, ani}, payments, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, hm.Weeks)
	require.Len(t, hm.Rows, 2)
	assert.Equal(t, "Ani", hm.Rows[0].Name)
	assert.Equal(t, []bool{true, false, true, false}, hm.Rows[0].Paid)
	assert.Equal(t, 2, hm.Rows[0].PaidWeeks)
	assert.Equal(t, "50", hm.Rows[0].PaymentRate.String())
	assert.Equal(t, 0, hm.Rows[1].PaidWeeks)
}

func TestDebtTrendReplaysByDate(t *testing.T) {
	ani, budi := active("Ani", 1), active("Budi", 2)
	payments := []paymentModel.PaymentModel{
		regular(ani.StudentID, 4000, "2025-10-27", 1),
		regular(budi.StudentID, 2000, "2025-11-03", 2),
	}
	got := DebtTrend([]studentModel.StudentModel{ani, budi}, payments, settings, 3)
	require.Len(t, got, 3)

	// minggu 1: expected 4000, Ani bayar 4000 (lebih 2000), Budi kurang 2000
	assert.Equal(t, int64(4000), got[0].Expected)
	assert.Equal(t, int64(4000), got[0].Paid)
	assert.Equal(t, int64(2000), got[0].TotalArrears)
	assert.Equal(t, "100", got[0].CollectionRate.String())

	// minggu 2: expected 8000, paid 6000, Budi kurang 2000
	assert.Equal(t, int64(6000), got[1].Paid)
	assert.Equal(t, int64(2000), got[1].TotalArrears)

	// minggu 3: Ani 2000, Budi 4000
	assert.Equal(t, int64(6000), got[2].TotalArrears)
	assert.Equal(t, "50", got[2].CollectionRate.String())
}

func TestDebtTrendCapsAtTwelveWeeks(t *testing.T) {
	got := DebtTrend([]studentModel.StudentModel{active("Ani", 1)}, nil, settings, 20)
	require.Len(t, got, 12)
	assert.Equal(t, 12, got[11].Week)
	assert.Equal(t, int64(24000), got[11].TotalArrears)
}

func TestDashboardSummary(t *testing.T) {
	ani, budi := active("Ani", 1), active("Budi", 2)
	payments := []paymentModel.PaymentModel{
		regular(ani.StudentID, 8000, "2025-11-17", 4),
		custom(5000, "2025-11-10", 3),
	}
	expenses := []expenseModel.ExpenseModel{{ExpenseAmount: 3000, ExpenseDate: day("2025-11-12")}}
	open := eventModel.EventModel{EventID: uuid.New(), EventStatus: eventModel.EventActive}
	closed := eventModel.EventModel{EventID: uuid.New(), EventStatus: eventModel.EventCompleted}
	eps := []eventModel.EventPaymentModel{
		{EventPaymentEventID: open.EventID, EventPaymentAmount: 10000},
		{EventPaymentEventID: closed.EventID, EventPaymentAmount: 50000},
	}

	d := DashboardSummary([]studentModel.StudentModel{ani, budi}, payments, expenses, []eventModel.EventModel{open, closed}, eps, settings, 4)
	assert.Equal(t, int64(13000), d.TotalIncome)
	assert.Equal(t, int64(10000), d.Balance)
	assert.Equal(t, int64(8000), d.IncomeThisWeek)
	assert.Equal(t, 1, d.ActiveEvents)
	assert.Equal(t, int64(10000), d.ActiveEventCollected)
	assert.Equal(t, 2, d.ActiveStudentCount)
	assert.Equal(t, 1, d.LateCount)
	assert.Equal(t, int64(8000), d.TotalArrears)
}

/* ---------- Service + cache ---------- */

type memCache struct {
	data        map[string]any
	hits, purge int
}

func (m *memCache) Get(_ context.Context, key string, dst any) bool {
	v, ok := m.data[key]
	if !ok {
		return false
	}
	m.hits++
	*(dst.(*Dashboard)) = v.(Dashboard)
	return true
}

func (m *memCache) Set(_ context.Context, key string, v any) { m.data[key] = v }
func (m *memCache) Invalidate(context.Context)                { m.purge++; m.data = map[string]any{} }

type countingStudents struct {
	rows  []studentModel.StudentModel
	calls int
}

func (c *countingStudents) List(context.Context) ([]studentModel.StudentModel, error) {
	c.calls++
	return c.rows, nil
}

type staticPayments []paymentModel.PaymentModel

func (s staticPayments) All(context.Context) ([]paymentModel.PaymentModel, error) { return s, nil }

type staticExpenses []expenseModel.ExpenseModel

func (s staticExpenses) All(context.Context) ([]expenseModel.ExpenseModel, error) { return s, nil }

type noEvents struct{}

func (noEvents) AllEvents(context.Context) ([]eventModel.EventModel, error) { return nil, nil }
func (noEvents) AllPayments(context.Context) ([]eventModel.EventPaymentModel, error) {
	return nil, nil
}

type staticSettings struct{}

func (staticSettings) Get(context.Context) (settingService.Settings, error) { return settings, nil }

func TestDashboardIsCachedUntilInvalidated(t *testing.T) {
	students := &countingStudents{rows: []studentModel.StudentModel{active("Ani", 1)}}
	cache := &memCache{data: map[string]any{}}
	svc := NewService(students, staticPayments{}, staticExpenses{}, noEvents{}, staticSettings{}, cache)
	now := day("2025-11-17")

	first, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)
	second, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, students.calls)
	assert.Equal(t, 1, cache.hits)

	cache.Invalidate(context.Background())
	_, err = svc.Dashboard(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, students.calls)
}

func TestNilRedisCacheIsNoop(t *testing.T) {
	c := NewRedisCache(nil, 0)
	var d Dashboard
	assert.False(t, c.Get(context.Background(), "x", &d))
	c.Set(context.Background(), "x", d)
	c.Invalidate(context.Background())

	svc := NewService(&countingStudents{}, staticPayments{}, staticExpenses{}, noEvents{}, staticSettings{}, nil)
	got, err := svc.Weekly(context.Background(), day("2025-11-17"))
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

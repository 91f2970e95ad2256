// Package service berisi proyeksi laporan kas. Fungsi proyeksi murni dan
// toleran terhadap input kosong; Service di report_service.go yang memuat data.
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	eventModel "kaskelas_backend/internals/features/kas/events/model"
	eventService "kaskelas_backend/internals/features/kas/events/service"
	expenseModel "kaskelas_backend/internals/features/kas/expenses/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	settingService "kaskelas_backend/internals/features/kas/settings/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
	"kaskelas_backend/internals/helpers/dbtime"
)

// Jendela tampilan mingguan (heatmap, grafik per minggu, tren tunggakan).
const WeeksShown = 12

var hundred = decimal.NewFromInt(100)

// Percent: part/whole*100, dua desimal. whole <= 0 → 0.
func Percent(part, whole int64) decimal.Decimal {
	if whole <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole)).Round(2)
}

// windowStart: awal hari (windowDays-1) hari sebelum now. 0 → tanpa batas.
func windowStart(now time.Time, windowDays int) (time.Time, bool) {
	if windowDays <= 0 {
		return time.Time{}, false
	}
	return dbtime.StartOfDay(now).AddDate(0, 0, -(windowDays - 1)), true
}

func inWindow(t, now time.Time, windowDays int) bool {
	from, ok := windowStart(now, windowDays)
	if !ok {
		return true
	}
	t = t.In(now.Location())
	return !t.Before(from) && !t.After(dbtime.EndOfDay(now))
}

/* ============ Pemasukan vs pengeluaran harian ============ */

type DailyPoint struct {
	Date    string `json:"date"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// IncomeExpenseSeries: bucket per tanggal kalender di zona now.
// windowDays ∈ {7,30,90}; 0 = semua data.
func IncomeExpenseSeries(payments []paymentModel.PaymentModel, expenses []expenseModel.ExpenseModel, now time.Time, windowDays int) []DailyPoint {
	loc := now.Location()
	buckets := make(map[string]*DailyPoint)
	get := func(t time.Time) *DailyPoint {
		k := dbtime.DateKey(t.In(loc))
		if p, ok := buckets[k]; ok {
			return p
		}
		p := &DailyPoint{Date: k}
		buckets[k] = p
		return p
	}
	for _, p := range payments {
		if inWindow(p.PaymentDate, now, windowDays) {
			get(p.PaymentDate).Income += p.PaymentAmount
		}
	}
	for _, e := range expenses {
		if inWindow(e.ExpenseDate, now, windowDays) {
			get(e.ExpenseDate).Expense += e.ExpenseAmount
		}
	}

	out := make([]DailyPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

/* ============ Pengeluaran per kategori ============ */

type CategoryTotal struct {
	Category expenseModel.ExpenseCategory `json:"category"`
	Total    int64                        `json:"total"`
	Count    int                          `json:"count"`
	Percent  decimal.Decimal              `json:"percent"`
}

// ExpenseByCategory: hanya kategori yang punya data, urut total terbesar.
func ExpenseByCategory(expenses []expenseModel.ExpenseModel, now time.Time, windowDays int) []CategoryTotal {
	totals := make(map[expenseModel.ExpenseCategory]*CategoryTotal)
	var grand int64
	for _, e := range expenses {
		if !inWindow(e.ExpenseDate, now, windowDays) {
			continue
		}
		ct, ok := totals[e.ExpenseCategory]
		if !ok {
			ct = &CategoryTotal{Category: e.ExpenseCategory}
			totals[e.ExpenseCategory] = ct
		}
		ct.Total += e.ExpenseAmount
		ct.Count++
		grand += e.ExpenseAmount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		ct.Percent = Percent(ct.Total, grand)
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

/* ============ Total iuran per minggu ============ */

type WeekTotal struct {
	Week  int   `json:"week"`
	Total int64 `json:"total"`
	Count int   `json:"count"`
}

// DisplayedWeeks: max(1, cw-11) .. cw. cw < 1 → kosong.
func DisplayedWeeks(currentWeek int) []int {
	if currentWeek < 1 {
		return []int{}
	}
	from := currentWeek - WeeksShown + 1
	if from < 1 {
		from = 1
	}
	out := make([]int, 0, currentWeek-from+1)
	for w := from; w <= currentWeek; w++ {
		out = append(out, w)
	}
	return out
}

// WeeklyTotals: iuran reguler per minggu tersimpan, zero-filled.
func WeeklyTotals(payments []paymentModel.PaymentModel, currentWeek int) []WeekTotal {
	weeks := DisplayedWeeks(currentWeek)
	idx := make(map[int]int, len(weeks))
	out := make([]WeekTotal, len(weeks))
	for i, w := range weeks {
		idx[w] = i
		out[i].Week = w
	}
	for _, p := range payments {
		if p.PaymentSource != paymentModel.SourceRegular {
			continue
		}
		if i, ok := idx[p.PaymentWeek]; ok {
			out[i].Total += p.PaymentAmount
			out[i].Count++
		}
	}
	return out
}

/* ============ Heatmap pembayaran ============ */

type HeatmapRow struct {
	StudentID   uuid.UUID       `json:"student_id"`
	Name        string          `json:"name"`
	Absen       int             `json:"absen"`
	Paid        []bool          `json:"paid"` // sejajar dengan Heatmap.Weeks
	PaidWeeks   int             `json:"paid_weeks"`
	PaymentRate decimal.Decimal `json:"payment_rate"`
}

type Heatmap struct {
	Weeks []int        `json:"weeks"`
	Rows  []HeatmapRow `json:"rows"`
}

// PaymentHeatmap: sel (siswa, minggu) terisi kalau ada iuran reguler
// dengan payment_week tersebut.
func PaymentHeatmap(students []studentModel.StudentModel, payments []paymentModel.PaymentModel, currentWeek int) Heatmap {
	weeks := DisplayedWeeks(currentWeek)
	paid := make(map[uuid.UUID]map[int]bool)
	for _, p := range payments {
		if p.PaymentSource != paymentModel.SourceRegular || p.PaymentStudentID == nil {
			continue
		}
		m, ok := paid[*p.PaymentStudentID]
		if !ok {
			m = make(map[int]bool)
			paid[*p.PaymentStudentID] = m
		}
		m[p.PaymentWeek] = true
	}

	active := activeSorted(students)
	hm := Heatmap{Weeks: weeks, Rows: make([]HeatmapRow, 0, len(active))}
	for _, s := range active {
		row := HeatmapRow{StudentID: s.StudentID, Name: s.StudentName, Absen: s.StudentAbsen, Paid: make([]bool, len(weeks))}
		for i, w := range weeks {
			if paid[s.StudentID][w] {
				row.Paid[i] = true
				row.PaidWeeks++
			}
		}
		row.PaymentRate = Percent(int64(row.PaidWeeks), int64(len(weeks)))
		hm.Rows = append(hm.Rows, row)
	}
	return hm
}

/* ============ Tren tunggakan ============ */

type DebtPoint struct {
	Week           int             `json:"week"`
	Expected       int64           `json:"expected"`
	Paid           int64           `json:"paid"`
	TotalArrears   int64           `json:"total_arrears"`
	LateCount      int             `json:"late_count"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
}

// DebtTrend memutar ulang perhitungan tunggakan untuk minggu 1..min(cw,12)
// memakai pembayaran dengan WeekIndex(tanggal, start) <= w.
func DebtTrend(students []studentModel.StudentModel, payments []paymentModel.PaymentModel, st settingService.Settings, currentWeek int) []DebtPoint {
	last := currentWeek
	if last > WeeksShown {
		last = WeeksShown
	}
	if last < 1 {
		return []DebtPoint{}
	}

	active := activeSorted(students)
	weekOf := make([]int, len(payments))
	for i, p := range payments {
		weekOf[i] = tunggakan.WeekIndex(p.PaymentDate, st.StartDate)
	}

	out := make([]DebtPoint, 0, last)
	for w := 1; w <= last; w++ {
		upTo := make([]paymentModel.PaymentModel, 0, len(payments))
		for i, p := range payments {
			if weekOf[i] <= w {
				upTo = append(upTo, p)
			}
		}
		roster := tunggakan.RosterArrears(active, upTo, w, st)
		pt := DebtPoint{
			Week:         w,
			Expected:     roster.Summary.TotalExpected,
			Paid:         roster.Summary.TotalPaid,
			TotalArrears: roster.Summary.TotalOwed,
			LateCount:    roster.Summary.LateCount,
		}
		pt.CollectionRate = Percent(pt.Paid, pt.Expected)
		out = append(out, pt)
	}
	return out
}

/* ============ Ringkasan dashboard ============ */

type Dashboard struct {
	CurrentWeek          int   `json:"current_week"`
	TotalIncome          int64 `json:"total_income"`
	TotalExpense         int64 `json:"total_expense"`
	Balance              int64 `json:"balance"`
	IncomeThisWeek       int64 `json:"income_this_week"`
	ActiveEvents         int   `json:"active_events"`
	ActiveEventCollected int64 `json:"active_event_collected"`
	StudentCount         int   `json:"student_count"`
	ActiveStudentCount   int   `json:"active_student_count"`
	LateCount            int   `json:"late_count"`
	TotalArrears         int64 `json:"total_arrears"`
}

// DashboardSummary: saldo kas = semua payment (reguler, lain-lain, sisa event)
// dikurangi pengeluaran. Dana event yang masih aktif dilaporkan terpisah.
func DashboardSummary(
	students []studentModel.StudentModel,
	payments []paymentModel.PaymentModel,
	expenses []expenseModel.ExpenseModel,
	events []eventModel.EventModel,
	eventPayments []eventModel.EventPaymentModel,
	st settingService.Settings,
	currentWeek int,
) Dashboard {
	d := Dashboard{CurrentWeek: currentWeek, StudentCount: len(students)}
	for _, p := range payments {
		d.TotalIncome += p.PaymentAmount
		if p.PaymentWeek == currentWeek {
			d.IncomeThisWeek += p.PaymentAmount
		}
	}
	for _, e := range expenses {
		d.TotalExpense += e.ExpenseAmount
	}
	d.Balance = d.TotalIncome - d.TotalExpense

	for _, ev := range events {
		if ev.IsCompleted() {
			continue
		}
		d.ActiveEvents++
		d.ActiveEventCollected += eventService.TotalCollected(ev.EventID, eventPayments)
	}

	roster := tunggakan.RosterArrears(students, payments, currentWeek, st)
	d.ActiveStudentCount = roster.Summary.ActiveCount
	d.LateCount = roster.Summary.LateCount
	d.TotalArrears = roster.Summary.TotalOwed
	return d
}

func activeSorted(students []studentModel.StudentModel) []studentModel.StudentModel {
	out := make([]studentModel.StudentModel, 0, len(students))
	for _, s := range students {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	tunggakan.SortRoster(out)
	return out
}

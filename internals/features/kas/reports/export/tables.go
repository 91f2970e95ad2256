package export

import (
	"time"

	"github.com/google/uuid"

	eventModel "kaskelas_backend/internals/features/kas/events/model"
	expenseModel "kaskelas_backend/internals/features/kas/expenses/model"
	paymentService "kaskelas_backend/internals/features/kas/payments/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
	"kaskelas_backend/internals/helpers/dbtime"
)

func dateCell(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return dbtime.DateKey(t)
}

func PaymentsTable(rows []paymentService.PaymentRow, loc *time.Location) Table {
	t := Table{
		Sheet:   "Pembayaran",
		Headers: []string{"Tanggal", "Minggu", "Nama", "Absen", "Sumber", "Metode", "Nominal", "Catatan"},
	}
	for _, r := range rows {
		absen := any("")
		if r.StudentFound {
			absen = r.StudentAbsen
		}
		note := ""
		if r.PaymentNote != nil {
			note = *r.PaymentNote
		}
		t.Rows = append(t.Rows, []any{
			dateCell(r.PaymentDate, loc), r.PaymentWeek, r.DisplayName, absen,
			string(r.PaymentSource), string(r.PaymentMethod), r.PaymentAmount, note,
		})
	}
	return t
}

func ArrearsTable(res tunggakan.RosterArrearsResult) Table {
	t := Table{
		Sheet:   "Tunggakan",
		Headers: []string{"Absen", "Nama", "Status", "Sudah Bayar", "Kewajiban", "Tunggakan", "Minggu Terlambat"},
	}
	for _, r := range res.Rows {
		t.Rows = append(t.Rows, []any{
			r.Absen, r.Name, string(r.Status), r.TotalPaid, r.Expected, r.AmountOwed, r.WeeksLate,
		})
	}
	return t
}

func ExpensesTable(rows []expenseModel.ExpenseModel, loc *time.Location) Table {
	t := Table{
		Sheet:   "Pengeluaran",
		Headers: []string{"Tanggal", "Keperluan", "Kategori", "Disetujui", "Nominal"},
	}
	for _, e := range rows {
		t.Rows = append(t.Rows, []any{
			dateCell(e.ExpenseDate, loc), e.ExpensePurpose, string(e.ExpenseCategory), e.ExpenseApprover, e.ExpenseAmount,
		})
	}
	return t
}

// EventPaymentsTable: nama event & siswa di-resolve; yang hilang tetap ditulis.
func EventPaymentsTable(events []eventModel.EventModel, payments []eventModel.EventPaymentModel, students []studentModel.StudentModel, loc *time.Location) Table {
	eventName := make(map[uuid.UUID]string, len(events))
	for _, e := range events {
		eventName[e.EventID] = e.EventName
	}
	studentName := make(map[uuid.UUID]string, len(students))
	for _, s := range students {
		studentName[s.StudentID] = s.StudentName
	}

	t := Table{
		Sheet:   "Pembayaran Event",
		Headers: []string{"Tanggal", "Event", "Nama", "Metode", "Nominal"},
	}
	for _, p := range payments {
		ev, ok := eventName[p.EventPaymentEventID]
		if !ok {
			ev = "-"
		}
		name, ok := studentName[p.EventPaymentStudentID]
		if !ok {
			name = paymentService.UnknownStudentName
		}
		t.Rows = append(t.Rows, []any{
			dateCell(p.EventPaymentDate, loc), ev, name, string(p.EventPaymentMethod), p.EventPaymentAmount,
		})
	}
	return t
}

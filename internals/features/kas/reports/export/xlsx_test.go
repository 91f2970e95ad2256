package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	eventModel "kaskelas_backend/internals/features/kas/events/model"
	expenseModel "kaskelas_backend/internals/features/kas/expenses/model"
	paymentModel "kaskelas_backend/internals/features/kas/payments/model"
	paymentService "kaskelas_backend/internals/features/kas/payments/service"
	studentModel "kaskelas_backend/internals/features/kas/students/model"
)

func TestWriteXLSXRoundTrip(t *testing.T) {
	d := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	ani := studentModel.StudentModel{StudentID: uuid.New(), StudentName: "Ani", StudentAbsen: 1, StudentStatus: studentModel.StudentActive}
	lost := uuid.New()

	payments := paymentService.ListFiltered([]paymentModel.PaymentModel{
		{PaymentID: uuid.New(), PaymentStudentID: &ani.StudentID, PaymentAmount: 2000, PaymentDate: d, PaymentWeek: 4, PaymentSource: paymentModel.SourceRegular, PaymentMethod: paymentModel.MethodCash},
		{PaymentID: uuid.New(), PaymentStudentID: &lost, PaymentAmount: 4000, PaymentDate: d, PaymentWeek: 4, PaymentSource: paymentModel.SourceRegular, PaymentMethod: paymentModel.MethodTransfer},
	}, []studentModel.StudentModel{ani}, paymentService.Filter{})

	ev := eventModel.EventModel{EventID: uuid.New(), EventName: "Bukber"}
	tables := []Table{
		PaymentsTable(payments, time.UTC),
		ExpensesTable([]expenseModel.ExpenseModel{{ExpenseAmount: 1500, ExpenseDate: d, ExpensePurpose: "Sapu", ExpenseCategory: expenseModel.CategoryCleanliness}}, time.UTC),
		EventPaymentsTable([]eventModel.EventModel{ev}, []eventModel.EventPaymentModel{
			{EventPaymentEventID: ev.EventID, EventPaymentStudentID: ani.StudentID, EventPaymentAmount: 10000, EventPaymentDate: d, EventPaymentMethod: paymentModel.MethodCash},
		}, []studentModel.StudentModel{ani}, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, tables...))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Pembayaran", "Pengeluaran", "Pembayaran Event"}, f.GetSheetList())

	rows, err := f.GetRows("Pembayaran")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tanggal", rows[0][0])
	names := []string{rows[1][2], rows[2][2]}
	assert.ElementsMatch(t, []string{"Ani", paymentService.UnknownStudentName}, names)

	evRows, err := f.GetRows("Pembayaran Event")
	require.NoError(t, err)
	require.Len(t, evRows, 2)
	assert.Equal(t, []string{"2025-11-17", "Bukber", "Ani", "cash", "10000"}, evRows[1])
}

func TestWriteXLSXNeedsTables(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteXLSX(&buf))
}

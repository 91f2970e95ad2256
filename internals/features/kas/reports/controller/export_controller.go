package controller

import (
	"bytes"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	eventService "kaskelas_backend/internals/features/kas/events/service"
	expenseService "kaskelas_backend/internals/features/kas/expenses/service"
	paymentService "kaskelas_backend/internals/features/kas/payments/service"
	"kaskelas_backend/internals/features/kas/reports/export"
	studentService "kaskelas_backend/internals/features/kas/students/service"
	tunggakanService "kaskelas_backend/internals/features/kas/tunggakan/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
)

type ExportController struct {
	Ledger    *paymentService.Ledger
	Students  *studentService.Service
	Expenses  *expenseService.Service
	Events    *eventService.Engine
	Tunggakan *tunggakanService.Service
}

// GET /export/kas.xlsx
func (h *ExportController) Workbook(c *fiber.Ctx) error {
	ctx := c.UserContext()
	now := dbtime.NowInClass()
	loc := dbtime.ClassLocation()

	payments, err := h.Ledger.ListFiltered(ctx, paymentService.Filter{})
	if err != nil {
		return helper.FromError(c, err)
	}
	snap, err := h.Tunggakan.Snapshot(ctx, now)
	if err != nil {
		return helper.FromError(c, err)
	}
	expenses, err := h.Expenses.List(ctx, expenseService.Filter{})
	if err != nil {
		return helper.FromError(c, err)
	}
	events, err := h.Events.AllEvents(ctx)
	if err != nil {
		return helper.FromError(c, err)
	}
	eventPayments, err := h.Events.AllPayments(ctx)
	if err != nil {
		return helper.FromError(c, err)
	}
	students, err := h.Students.List(ctx, "", "")
	if err != nil {
		return helper.FromError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf,
		export.PaymentsTable(payments, loc),
		export.ArrearsTable(snap.Roster),
		export.ExpensesTable(expenses, loc),
		export.EventPaymentsTable(events, eventPayments, students, loc),
	); err != nil {
		log.Printf("[ERROR] export xlsx: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	name := fmt.Sprintf("kas_kelas_%s.xlsx", now.Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}

package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "kaskelas_backend/internals/features/kas/payments/dto"
	model "kaskelas_backend/internals/features/kas/payments/model"
	"kaskelas_backend/internals/features/kas/payments/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
)

type PaymentController struct {
	Ledger   *service.Ledger
	Validate *validator.Validate
}

func NewPaymentController(ledger *service.Ledger) *PaymentController {
	return &PaymentController{Ledger: ledger, Validate: validator.New()}
}

/* ======================== LIST ======================== */
// GET /payments?q=&method=&source=&from=&to=&page=&per_page=
func (h *PaymentController) List(c *fiber.Ctx) error {
	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := h.Validate.Struct(q); err != nil {
		return helper.FromError(c, err)
	}
	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return helper.FromError(c, err)
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return helper.FromError(c, err)
	}
	if from != nil && to != nil && to.Before(*from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal 'to' tidak boleh sebelum 'from'")
	}

	rows, err := h.Ledger.ListFiltered(c.UserContext(), service.Filter{
		Search: q.Q,
		Method: model.PaymentMethod(q.Method),
		Source: model.PaymentSource(q.Source),
		From:   from,
		To:     to,
	})
	if err != nil {
		return helper.FromError(c, err)
	}

	var total int64
	for _, r := range rows {
		total += r.PaymentAmount
	}

	p := helper.ResolvePaging(c, 25, 200)
	page := helper.Window(rows, p)
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "ok",
		"data":         dto.FromRows(page),
		"total_amount": total,
		"pagination":   helper.BuildPagination(int64(len(rows)), p, len(page)),
	})
}

/* ======================= CREATE ======================= */
// POST /payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.PaymentSource == "" {
		req.PaymentSource = string(model.SourceRegular)
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_date harus berformat YYYY-MM-DD")
	}

	p, err := h.Ledger.Add(c.UserContext(), in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", dto.FromModel(*p, p.SourceName()))
}

/* ======================= BULK CREATE ======================= */
// POST /payments/bulk
// Satu siswa tidak valid → seluruh batch ditolak, tidak ada yang tersimpan.
func (h *PaymentController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkCreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}
	d, err := dbtime.ParseDate(req.PaymentDate, dbtime.ClassLocation())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_date harus berformat YYYY-MM-DD")
	}

	ps, err := h.Ledger.AddMany(c.UserContext(), req.ToInputs(d))
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[KAS] bulk payment: %d siswa dicatat", len(ps))

	out := make([]dto.PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, dto.FromModel(*p, ""))
	}
	return helper.JsonCreated(c, "Pembayaran massal berhasil dicatat", out)
}

/* ======================== DELETE ======================== */
// DELETE /payments/:id
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := h.Ledger.Remove(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Pembayaran dihapus", fiber.Map{"payment_id": id})
}

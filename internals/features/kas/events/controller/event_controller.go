package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/features/kas/events/dto"
	"kaskelas_backend/internals/features/kas/events/model"
	"kaskelas_backend/internals/features/kas/events/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
)

type EventController struct {
	Engine   *service.Engine
	Validate *validator.Validate
}

func NewEventController(engine *service.Engine) *EventController {
	return &EventController{Engine: engine, Validate: validator.New()}
}

// GET /events?status=active|completed
func (h *EventController) List(c *fiber.Ctx) error {
	var q dto.ListEventQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := h.Validate.Struct(q); err != nil {
		return helper.FromError(c, err)
	}
	rows, err := h.Engine.List(c.UserContext(), model.EventStatus(q.Status))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromSummaries(rows))
}

// GET /events/:id
func (h *EventController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	s, err := h.Engine.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromSummary(*s))
}

// GET /events/:id/payments
func (h *EventController) ListPayments(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := h.Engine.Payments(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromPayments(rows))
}

// POST /events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal harus berformat YYYY-MM-DD")
	}
	ev, err := h.Engine.Create(c.UserContext(), in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Event berhasil dibuat", dto.FromModel(*ev))
}

// POST /events/:id/payments
func (h *EventController) RecordPayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.RecordEventPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}
	in, err := req.ToInput(id, dbtime.NowInClass())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date harus berformat YYYY-MM-DD")
	}
	p, err := h.Engine.RecordPayment(c.UserContext(), in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran event dicatat", dto.FromPayment(*p))
}

// POST /events/:id/complete
func (h *EventController) Complete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	res, err := h.Engine.Complete(c.UserContext(), id, dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}

	out := fiber.Map{"event": dto.FromSummary(res.Summary)}
	msg := "Event selesai"
	if res.SurplusPayment != nil {
		out["surplus_payment_id"] = res.SurplusPayment.PaymentID
		out["surplus_amount"] = res.SurplusPayment.PaymentAmount
		msg = "Event selesai, sisa dana dipindah ke kas"
	}
	return helper.JsonUpdated(c, msg, out)
}

// DELETE /events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := h.Engine.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Event dihapus", fiber.Map{"event_id": id})
}

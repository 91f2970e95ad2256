package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "kaskelas_backend/internals/features/kas/expenses/dto"
	model "kaskelas_backend/internals/features/kas/expenses/model"
	"kaskelas_backend/internals/features/kas/expenses/service"
	helper "kaskelas_backend/internals/helpers"
)

type ExpenseController struct {
	Svc      *service.Service
	Validate *validator.Validate
}

func NewExpenseController(svc *service.Service) *ExpenseController {
	return &ExpenseController{Svc: svc, Validate: validator.New()}
}

// GET /expenses?category=&q=&from=&to=
func (h *ExpenseController) List(c *fiber.Ctx) error {
	var q dto.ListExpenseQuery
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

	rows, err := h.Svc.List(c.UserContext(), service.Filter{
		Category: model.ExpenseCategory(q.Category),
		From:     from,
		To:       to,
		Search:   q.Q,
	})
	if err != nil {
		return helper.FromError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)
	page := helper.Window(rows, p)
	return helper.JsonList(c, "ok", dto.FromModels(page), helper.BuildPagination(int64(len(rows)), p, len(page)))
}

// POST /expenses
func (h *ExpenseController) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}
	e, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "expense_date harus berformat YYYY-MM-DD")
	}
	if err := h.Svc.Add(c.UserContext(), e); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", dto.FromModel(*e))
}

// DELETE /expenses/:id
func (h *ExpenseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := h.Svc.Remove(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Pengeluaran dihapus", fiber.Map{"expense_id": id})
}

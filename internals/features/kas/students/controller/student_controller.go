package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "kaskelas_backend/internals/features/kas/students/dto"
	model "kaskelas_backend/internals/features/kas/students/model"
	"kaskelas_backend/internals/features/kas/students/service"
	helper "kaskelas_backend/internals/helpers"
)

type StudentController struct {
	Svc      *service.Service
	Validate *validator.Validate
}

func NewStudentController(svc *service.Service) *StudentController {
	return &StudentController{Svc: svc, Validate: validator.New()}
}

/* ======================== LIST ======================== */
// GET /students?status=&q=&page=&per_page=
func (h *StudentController) List(c *fiber.Ctx) error {
	var q dto.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := h.Validate.Struct(q); err != nil {
		return helper.FromError(c, err)
	}

	rows, err := h.Svc.List(c.UserContext(), model.StudentStatus(q.Status), q.Q)
	if err != nil {
		return helper.FromError(c, err)
	}

	p := helper.ResolvePaging(c, 50, 200)
	page := helper.Window(rows, p)
	return helper.JsonList(c, "ok", dto.FromModels(page), helper.BuildPagination(int64(len(rows)), p, len(page)))
}

/* ======================== GET BY ID ======================== */
// GET /students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	st, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*st))
}

/* ======================= CREATE ======================= */
// POST /students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}

	m := req.ToModel()
	if err := h.Svc.Create(c.UserContext(), m); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.FromModel(*m))
}

/* ======================== UPDATE (PATCH) ======================== */
// PATCH /students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}

	st, err := h.Svc.Update(c.UserContext(), id, req.ApplyTo)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Data siswa diperbarui", dto.FromModel(*st))
}

/* ======================== DELETE ======================== */
// DELETE /students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := h.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Siswa dihapus dari roster", fiber.Map{"student_id": id})
}

package controller

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "academico_backend/internals/features/academic/teachers/model"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type TeacherController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewTeacherController(mgr *state.Manager) *TeacherController {
	return &TeacherController{Mgr: mgr, validate: validator.New()}
}

type createTeacherRequest struct {
	Name string `json:"name" validate:"required,min=1,max=160"`
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req createTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := m.TeacherModel{
		TeacherID:        uuid.NewString(),
		TeacherName:      strings.TrimSpace(req.Name),
		TeacherCreatedAt: time.Now(),
	}
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		snap.Teachers[item.TeacherID] = item
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Docente creado", item)
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var items []m.TeacherModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, it := range snap.Teachers {
			items = append(items, it)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].TeacherCreatedAt.Before(items[j].TeacherCreatedAt)
	})
	return helper.Success(c, "OK", items)
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	found := false
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if _, ok := snap.Teachers[id]; ok {
			delete(snap.Teachers, id)
			found = true
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Docente no encontrado")
	}
	return helper.Success(c, "Docente eliminado", fiber.Map{"id": id})
}

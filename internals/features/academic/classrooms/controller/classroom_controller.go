package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	catalogService "academico_backend/internals/features/academic/catalog/service"
	m "academico_backend/internals/features/academic/classrooms/model"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type ClassroomController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewClassroomController(mgr *state.Manager) *ClassroomController {
	return &ClassroomController{Mgr: mgr, validate: validator.New()}
}

type createClassroomRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Type string `json:"type"`
}

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req createClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var item m.ClassroomModel
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		snap.ClassroomSeq++
		item = m.ClassroomModel{
			ClassroomID:        uuid.NewString(),
			ClassroomName:      strings.TrimSpace(req.Name),
			ClassroomType:      catalogService.NormalizeClassroomType(req.Type),
			ClassroomSeq:       snap.ClassroomSeq,
			ClassroomCreatedAt: time.Now(),
		}
		snap.Classrooms[item.ClassroomID] = item
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aula creada", item)
}

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	var items []m.ClassroomModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		items = snap.ClassroomsOrdered()
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", items)
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	notFound := errors.New("not found")
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if !snap.DeleteClassroom(id) {
			return notFound
		}
		return nil
	})
	if errors.Is(err, notFound) {
		return helper.Error(c, fiber.StatusNotFound, "Aula no encontrada")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Aula eliminada", fiber.Map{"id": id})
}

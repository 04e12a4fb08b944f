package controller

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "academico_backend/internals/features/academic/coordinations/dto"
	m "academico_backend/internals/features/academic/coordinations/model"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type CoordinationController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewCoordinationController(mgr *state.Manager) *CoordinationController {
	return &CoordinationController{Mgr: mgr, validate: validator.New()}
}

func (ctl *CoordinationController) Create(c *fiber.Ctx) error {
	var req d.CreateCoordinationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Nombre requerido")
	}

	item := req.ToModel()
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		snap.Coordinations[item.CoordinationID] = item
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Coordinación creada", item)
}

func (ctl *CoordinationController) List(c *fiber.Ctx) error {
	var items []m.CoordinationModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, it := range snap.Coordinations {
			items = append(items, it)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CoordinationCreatedAt.Before(items[j].CoordinationCreatedAt)
	})
	return helper.Success(c, "OK", items)
}

func (ctl *CoordinationController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	notFound := errors.New("not found")
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if !snap.DeleteCoordination(id) {
			return notFound
		}
		return nil
	})
	if errors.Is(err, notFound) {
		return helper.Error(c, fiber.StatusNotFound, "Coordinación no encontrada")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Coordinación eliminada (con cascada)", fiber.Map{"id": id})
}

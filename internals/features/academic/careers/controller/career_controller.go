package controller

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "academico_backend/internals/features/academic/careers/dto"
	m "academico_backend/internals/features/academic/careers/model"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type CareerController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewCareerController(mgr *state.Manager) *CareerController {
	return &CareerController{Mgr: mgr, validate: validator.New()}
}

func (ctl *CareerController) Create(c *fiber.Ctx) error {
	var req d.CreateCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := req.ToModel()
	badParent := errors.New("bad parent")
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		// la carrera debe colgar de una coordinación existente
		if _, ok := snap.Coordinations[item.CareerCoordinationID]; !ok {
			return badParent
		}
		snap.Careers[item.CareerID] = item
		return nil
	})
	if errors.Is(err, badParent) {
		return helper.Error(c, fiber.StatusBadRequest, "Coordinación inexistente")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Carrera creada", item)
}

func (ctl *CareerController) List(c *fiber.Ctx) error {
	coordFilter := c.Query("coordination_id")

	var items []m.CareerModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, it := range snap.Careers {
			if coordFilter != "" && it.CareerCoordinationID != coordFilter {
				continue
			}
			items = append(items, it)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CareerCreatedAt.Before(items[j].CareerCreatedAt)
	})
	return helper.Success(c, "OK", items)
}

func (ctl *CareerController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	notFound := errors.New("not found")
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if !snap.DeleteCareer(id) {
			return notFound
		}
		return nil
	})
	if errors.Is(err, notFound) {
		return helper.Error(c, fiber.StatusNotFound, "Carrera no encontrada")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Carrera eliminada (con cascada)", fiber.Map{"id": id})
}

package controller

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "academico_backend/internals/features/academic/periods/dto"
	m "academico_backend/internals/features/academic/periods/model"
	service "academico_backend/internals/features/academic/periods/service"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type PeriodController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewPeriodController(mgr *state.Manager) *PeriodController {
	return &PeriodController{Mgr: mgr, validate: validator.New()}
}

func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	var req d.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var period m.PeriodModel
	badShift := errors.New("bad shift")
	var semantic error
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		shift, ok := snap.Shifts[req.ShiftID]
		if !ok {
			return badShift
		}
		p, verr := service.ValidatePeriod(shift, req.ToInput())
		if verr != nil {
			semantic = verr
			return verr
		}
		period = p
		snap.Periods[period.PeriodID] = period
		return nil
	})
	if errors.Is(err, badShift) {
		return helper.Error(c, fiber.StatusBadRequest, "Turno inexistente")
	}
	if semantic != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, semantic.Error())
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Periodo creado", period)
}

func (ctl *PeriodController) List(c *fiber.Ctx) error {
	shiftFilter := c.Query("shift_id")

	var items []m.PeriodModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, it := range snap.Periods {
			if shiftFilter != "" && it.PeriodShiftID != shiftFilter {
				continue
			}
			items = append(items, it)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].PeriodCreatedAt.Before(items[j].PeriodCreatedAt)
	})
	return helper.Success(c, "OK", items)
}

func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	found := false
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if _, ok := snap.Periods[id]; ok {
			delete(snap.Periods, id)
			found = true
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Periodo no encontrado")
	}
	return helper.Success(c, "Periodo eliminado", fiber.Map{"id": id})
}

package controller

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "academico_backend/internals/features/academic/shifts/dto"
	m "academico_backend/internals/features/academic/shifts/model"
	service "academico_backend/internals/features/academic/shifts/service"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type ShiftController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewShiftController(mgr *state.Manager) *ShiftController {
	return &ShiftController{Mgr: mgr, validate: validator.New()}
}

// Create valida la geometría completa del turno (bloques, ventanas de
// receso/almuerzo) antes de persistir. Errores semánticos responden 422.
func (ctl *ShiftController) Create(c *fiber.Ctx) error {
	var req d.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	shift, err := service.ValidateShift(req.ToInput())
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		snap.Shifts[shift.ShiftID] = shift
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Turno creado", shift)
}

func (ctl *ShiftController) List(c *fiber.Ctx) error {
	var items []m.ShiftModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, it := range snap.Shifts {
			items = append(items, it)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ShiftCreatedAt.Before(items[j].ShiftCreatedAt)
	})
	return helper.Success(c, "OK", items)
}

// Blocks devuelve las ventanas [inicio, fin) de cada bloque del turno —
// la vista que usa la grilla del frontend.
func (ctl *ShiftController) Blocks(c *fiber.Ctx) error {
	id := c.Params("id")

	type blockView struct {
		Block int    `json:"block"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	var views []blockView

	notFound := errors.New("not found")
	err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		shift, ok := snap.Shifts[id]
		if !ok {
			return notFound
		}
		for b := 1; b <= shift.ShiftBlocks; b++ {
			start, end, err := service.BlockWindow(shift, b)
			if err != nil {
				return err
			}
			views = append(views, blockView{
				Block: b,
				Start: service.FormatClock(start),
				End:   service.FormatClock(end),
			})
		}
		return nil
	})
	if errors.Is(err, notFound) {
		return helper.Error(c, fiber.StatusNotFound, "Turno no encontrado")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", views)
}

func (ctl *ShiftController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	notFound := errors.New("not found")
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if !snap.DeleteShift(id) {
			return notFound
		}
		return nil
	})
	if errors.Is(err, notFound) {
		return helper.Error(c, fiber.StatusNotFound, "Turno no encontrado")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Turno eliminado (con cascada)", fiber.Map{"id": id})
}

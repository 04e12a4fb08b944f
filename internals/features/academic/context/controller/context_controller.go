package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

// ContextController maneja los dos registros chicos de selección
// (activa y de vista) de coordinación/carrera/turno.
type ContextController struct {
	Mgr *state.Manager
}

func NewContextController(mgr *state.Manager) *ContextController {
	return &ContextController{Mgr: mgr}
}

func (ctl *ContextController) Get(c *fiber.Ctx) error {
	var active, view state.ContextRecord
	var role string
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		active, view, role = snap.Active, snap.View, snap.Role
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"role": role, "active": active, "view": view})
}

func (ctl *ContextController) PutActive(c *fiber.Ctx) error {
	return ctl.put(c, func(snap *state.Snapshot, rec state.ContextRecord) {
		snap.Active = rec
	})
}

func (ctl *ContextController) PutView(c *fiber.Ctx) error {
	return ctl.put(c, func(snap *state.Snapshot, rec state.ContextRecord) {
		snap.View = rec
	})
}

func (ctl *ContextController) put(c *fiber.Ctx, apply func(*state.Snapshot, state.ContextRecord)) error {
	var rec state.ContextRecord
	if err := c.BodyParser(&rec); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}

	var dangling string
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if rec.CoordinationID != "" {
			if _, ok := snap.Coordinations[rec.CoordinationID]; !ok {
				dangling = "coordination_id"
			}
		}
		if rec.CareerID != "" {
			if _, ok := snap.Careers[rec.CareerID]; !ok {
				dangling = "career_id"
			}
		}
		if rec.ShiftID != "" {
			if _, ok := snap.Shifts[rec.ShiftID]; !ok {
				dangling = "shift_id"
			}
		}
		if dangling != "" {
			return fiber.ErrBadRequest
		}
		apply(snap, rec)
		return nil
	})
	if dangling != "" {
		return helper.Error(c, fiber.StatusBadRequest, "Referencia inexistente: "+dangling)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Contexto actualizado", rec)
}

package controller

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"academico_backend/internals/constants"
	d "academico_backend/internals/features/academic/schedule/dto"
	m "academico_backend/internals/features/academic/schedule/model"
	service "academico_backend/internals/features/academic/schedule/service"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type ScheduleController struct {
	Mgr      *state.Manager
	Policy   string // IMPORT_POLICY para el endpoint genérico
	validate *validator.Validate
}

func NewScheduleController(mgr *state.Manager, policy string) *ScheduleController {
	return &ScheduleController{Mgr: mgr, Policy: policy, validate: validator.New()}
}

/* =========================
   Colocación manual
   ========================= */

// UpsertEntry coloca una clase a mano. Si el slot estaba ocupado el motor
// reemplaza en silencio y acá se reporta el desplazado como warning.
func (ctl *ScheduleController) UpsertEntry(c *fiber.Ctx) error {
	var req d.ManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := req.ToModel()
	if !constants.IsWeekDay(entry.ScheduleEntryDay) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Día fuera de la semana académica")
	}

	var stored m.ScheduleEntryModel
	var replaced bool
	var previous *m.ScheduleEntryModel
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		stored, replaced, previous = service.Upsert(snap, entry)
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	payload := fiber.Map{"entry": stored, "replaced": replaced}
	if replaced && previous != nil {
		payload["warning"] = "Se reemplazó una clase que ocupaba el slot"
		payload["previous"] = previous
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Clase colocada", payload)
}

func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	coordID := c.Query("coordination_id")
	careerID := c.Query("career_id")
	shiftID := c.Query("shift_id")

	var items []m.ScheduleEntryModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, e := range snap.ScheduleEntries {
			if coordID != "" && e.ScheduleEntryCoordinationID != coordID {
				continue
			}
			if careerID != "" && e.ScheduleEntryCareerID != careerID {
				continue
			}
			if shiftID != "" && e.ScheduleEntryShiftID != shiftID {
				continue
			}
			items = append(items, e)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ScheduleEntryDay != items[j].ScheduleEntryDay {
			return items[i].ScheduleEntryDay < items[j].ScheduleEntryDay
		}
		return items[i].ScheduleEntryBlock < items[j].ScheduleEntryBlock
	})
	return helper.Success(c, "OK", items)
}

func (ctl *ScheduleController) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")

	found := false
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if _, ok := snap.ScheduleEntries[id]; ok {
			delete(snap.ScheduleEntries, id)
			found = true
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Entrada no encontrada")
	}
	return helper.Success(c, "Entrada eliminada", fiber.Map{"id": id})
}

// Reset limpia el horario completo o, si vienen los tres campos, solo el
// contexto indicado.
func (ctl *ScheduleController) Reset(c *fiber.Ctx) error {
	var req d.ResetRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}

	scoped := req.CoordinationID != "" && req.CareerID != "" && req.ShiftID != ""
	removed := 0
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if scoped {
			removed = service.ResetContext(snap, req.CoordinationID, req.CareerID, req.ShiftID)
		} else {
			removed = service.Reset(snap)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Horario limpiado", fiber.Map{"removed": removed, "scoped": scoped})
}

/* =========================
   Generación automática
   ========================= */

func (ctl *ScheduleController) Generate(c *fiber.Ctx) error {
	var req d.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inserted := 0
	var semantic error
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		n, gerr := service.AutoGenerate(snap, req.CoordinationID, req.CareerID, req.ShiftID, req.PeriodID)
		if gerr != nil {
			semantic = gerr
			return gerr
		}
		inserted = n
		return nil
	})
	if semantic != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, semantic.Error())
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Horario generado", fiber.Map{
		"inserted": inserted,
	})
}

/* =========================
   Import estricto + endpoint genérico por política
   ========================= */

func (ctl *ScheduleController) ImportStrict(c *fiber.Ctx) error {
	var req d.ImportTextRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.runImport(c, service.PolicyStrict, req)
}

// Import delega en la estrategia configurada por IMPORT_POLICY.
func (ctl *ScheduleController) Import(c *fiber.Ctx) error {
	var req d.ImportTextRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.runImport(c, ctl.Policy, req)
}

func (ctl *ScheduleController) runImport(c *fiber.Ctx, policy string, req d.ImportTextRequest) error {
	imp := service.ImporterFor(policy)
	scope := service.ImportScope{
		CoordinationID: req.CoordinationID,
		CareerID:       req.CareerID,
		Source:         req.Source,
	}
	if imp.Name() == service.PolicyLenient {
		if scope.CoordinationID == "" || scope.CareerID == "" {
			return helper.Error(c, fiber.StatusBadRequest, "coordination_id y career_id requeridos para la política lenient")
		}
		if scope.Source == "" {
			scope.Source = "inline"
		}
	}

	inserted := 0
	var importErrs []string
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		n, errs := imp.Import(snap, req.Text, scope)
		if len(errs) > 0 {
			importErrs = errs
			return fiber.ErrUnprocessableEntity
		}
		inserted = n
		return nil
	})
	if len(importErrs) > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Import rechazado", importErrs)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Import aplicado", fiber.Map{
		"policy":   imp.Name(),
		"inserted": inserted,
	})
}

// Records lista los registros planos de la variante estricta.
func (ctl *ScheduleController) Records(c *fiber.Ctx) error {
	var items []m.ClassRecordModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, r := range snap.ClassRecords {
			items = append(items, r)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ClassRecordDay != items[j].ClassRecordDay {
			return items[i].ClassRecordDay < items[j].ClassRecordDay
		}
		return items[i].ClassRecordStart < items[j].ClassRecordStart
	})
	return helper.Success(c, "OK", items)
}

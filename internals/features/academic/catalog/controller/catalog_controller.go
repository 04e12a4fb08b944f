package controller

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "academico_backend/internals/features/academic/catalog/dto"
	m "academico_backend/internals/features/academic/catalog/model"
	service "academico_backend/internals/features/academic/catalog/service"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type CatalogController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewCatalogController(mgr *state.Manager) *CatalogController {
	return &CatalogController{Mgr: mgr, validate: validator.New()}
}

// Import corre el importer toleran-alias. Solo fallas estructurales
// (sin datos / header sin resolver) abortan; las filas malas degradan a
// defaults y nunca se rechazan una por una.
func (ctl *CatalogController) Import(c *fiber.Ctx) error {
	var req d.ImportCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	source := req.Source
	if source == "" {
		source = "inline"
	}

	inserted := 0
	var structural error
	err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		n, ierr := service.ImportCatalog(snap, req.Text, req.CoordinationID, req.CareerID, source)
		if ierr != nil {
			structural = ierr
			return ierr
		}
		inserted = n
		return nil
	})
	if structural != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, structural.Error())
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Catálogo importado", fiber.Map{
		"inserted": inserted,
	})
}

func (ctl *CatalogController) List(c *fiber.Ctx) error {
	coordID := c.Query("coordination_id")
	careerID := c.Query("career_id")

	var items []m.CatalogItemModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		if coordID != "" && careerID != "" {
			items = snap.CatalogItemsOrdered(coordID, careerID)
			return nil
		}
		for _, it := range snap.CatalogItems {
			items = append(items, it)
		}
		sort.Slice(items, func(i, j int) bool {
			return items[i].CatalogItemSeq < items[j].CatalogItemSeq
		})
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", items)
}

// Batches — bitácora de cargas (nombre, fecha, filas insertadas).
func (ctl *CatalogController) Batches(c *fiber.Ctx) error {
	var items []m.ImportBatchModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, b := range snap.ImportBatches {
			items = append(items, b)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ImportBatchUploadedAt.Before(items[j].ImportBatchUploadedAt)
	})
	return helper.Success(c, "OK", items)
}

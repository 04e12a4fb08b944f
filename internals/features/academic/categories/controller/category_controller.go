package controller

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "academico_backend/internals/features/academic/categories/model"
	helper "academico_backend/internals/helpers"
	"academico_backend/internals/state"
)

type CategoryController struct {
	Mgr      *state.Manager
	validate *validator.Validate
}

func NewCategoryController(mgr *state.Manager) *CategoryController {
	return &CategoryController{Mgr: mgr, validate: validator.New()}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func (ctl *CategoryController) Create(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := m.CategoryModel{
		CategoryID:        uuid.NewString(),
		CategoryName:      strings.TrimSpace(req.Name),
		CategoryCreatedAt: time.Now(),
	}
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		snap.Categories[item.CategoryID] = item
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Categoría creada", item)
}

func (ctl *CategoryController) List(c *fiber.Ctx) error {
	var items []m.CategoryModel
	if err := ctl.Mgr.View(c.UserContext(), func(snap *state.Snapshot) error {
		for _, it := range snap.Categories {
			items = append(items, it)
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CategoryCreatedAt.Before(items[j].CategoryCreatedAt)
	})
	return helper.Success(c, "OK", items)
}

func (ctl *CategoryController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	found := false
	if err := ctl.Mgr.Update(c.UserContext(), func(snap *state.Snapshot) error {
		if _, ok := snap.Categories[id]; ok {
			delete(snap.Categories, id)
			found = true
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Categoría no encontrada")
	}
	return helper.Success(c, "Categoría eliminada", fiber.Map{"id": id})
}

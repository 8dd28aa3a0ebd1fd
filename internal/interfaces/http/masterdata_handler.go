package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rolexfittings/pipestock-api/internal/application/dto"
	"github.com/rolexfittings/pipestock-api/internal/application/masterdata"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
)

// MasterDataHandler maneja las listas de referencia (protegido).
type MasterDataHandler struct {
	uc *masterdata.UseCase
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(uc *masterdata.UseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// List godoc
// @Summary      Valores de una lista de referencia (siembra en primera lectura vacía)
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "categories | grades | sizes | schedules | locations"
// @Success      200  {array}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/masterdata/{kind} [get]
func (h *MasterDataHandler) List(c *fiber.Ctx) error {
	names, err := h.uc.List(c.Params("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(names)
}

// Add godoc
// @Summary      Agregar un valor a una lista de referencia
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "categories | grades | sizes | schedules | locations"
// @Param        body  body  map[string]string  true  "{name: valor}"
// @Success      201   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/masterdata/{kind} [post]
func (h *MasterDataHandler) Add(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Add(c.Params("kind"), in.Name); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "valor agregado"})
}

// FixedLists godoc
// @Summary      Listas fijas no persistidas (orígenes y condiciones de costura)
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/masterdata [get]
func (h *MasterDataHandler) FixedLists(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"origins":         entity.Origins,
		"seam_conditions": entity.SeamConditions,
	})
}

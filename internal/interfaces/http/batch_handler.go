package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rolexfittings/pipestock-api/internal/application/dto"
	"github.com/rolexfittings/pipestock-api/internal/application/ledger"
	"github.com/rolexfittings/pipestock-api/internal/application/report"
	"github.com/rolexfittings/pipestock-api/internal/domain/entity"
)

// BatchHandler maneja consultas y edición de lotes (protegido).
type BatchHandler struct {
	uc       *ledger.ReconciliationUseCase
	reportUC *report.UseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *ledger.ReconciliationUseCase, reportUC *report.UseCase) *BatchHandler {
	return &BatchHandler{uc: uc, reportUC: reportUC}
}

// OpenBatches godoc
// @Summary      Pool de selección para salidas: lotes con stock de una combinación, FIFO
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        category        query  string  true   "categoría"
// @Param        grade           query  string  true   "grado"
// @Param        size1           query  string  true   "medida (o primera medida)"
// @Param        size2           query  string  false  "segunda medida (solo doble medida)"
// @Param        schedule        query  string  true   "schedule"
// @Param        origin          query  string  true   "origen"
// @Param        seam_condition  query  string  true   "condición de costura"
// @Param        location        query  string  true   "ubicación"
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/batches/open [get]
func (h *BatchHandler) OpenBatches(c *fiber.Ctx) error {
	key := entity.ItemKey{
		Category:      c.Query("category"),
		Grade:         c.Query("grade"),
		Size1:         c.Query("size1"),
		Size2:         c.Query("size2"),
		Schedule:      c.Query("schedule"),
		Origin:        c.Query("origin"),
		SeamCondition: c.Query("seam_condition"),
		Location:      c.Query("location"),
	}
	batches, err := h.uc.OpenBatches(key)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.FromBatch(b))
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Registros del libro de un lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/batches/{id}/records [get]
func (h *BatchHandler) History(c *fiber.Ctx) error {
	entries, err := h.reportUC.BatchHistory(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromLedgerEntry(e))
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar campos descriptivos de un lote (nunca cantidades)
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.EditBatchRequest  true  "nueva clave de identidad completa"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [put]
func (h *BatchHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.EditBatch(c.Context(), ledger.EditBatchInput{
		BatchID: c.Params("id"),
		Key:     in.ToItemKey(),
		Remarks: in.Remarks,
		EntryBy: entryBy(c, in.EntryBy),
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lote actualizado"})
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rolexfittings/pipestock-api/internal/application/dto"
	"github.com/rolexfittings/pipestock-api/internal/application/ledger"
	"github.com/rolexfittings/pipestock-api/internal/application/report"
)

// LedgerHandler maneja las operaciones del motor de reconciliación y las
// consultas de historial (protegido).
type LedgerHandler struct {
	uc       *ledger.ReconciliationUseCase
	reportUC *report.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.ReconciliationUseCase, reportUC *report.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc, reportUC: reportUC}
}

// parseDate interpreta fechas YYYY-MM-DD de la API; vacío devuelve cero.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// entryBy toma el nombre del body o, si falta, el del token.
func entryBy(c *fiber.Ctx, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return GetOperator(c)
}

// Receive godoc
// @Summary      Recepción de stock (IN): crea un lote nuevo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "clave de identidad completa, cantidad positiva, fecha, entry_by"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/in [post]
func (h *LedgerHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	batchID, err := h.uc.Receive(c.Context(), ledger.ReceiveInput{
		Key:      in.ToItemKey(),
		Quantity: in.Quantity,
		Date:     date,
		Remarks:  in.Remarks,
		EntryBy:  entryBy(c, in.EntryBy),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"batch_id": batchID})
}

// Issue godoc
// @Summary      Salida de stock (OUT) contra un lote seleccionado
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueRequest  true  "batch_id, cantidad, fecha, entry_by"
// @Success      201   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/out [post]
func (h *LedgerHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	if err := h.uc.Issue(c.Context(), ledger.IssueInput{
		BatchID:  in.BatchID,
		Quantity: in.Quantity,
		Date:     date,
		Remarks:  in.Remarks,
		EntryBy:  entryBy(c, in.EntryBy),
	}); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salida registrada"})
}

// Adjust godoc
// @Summary      Ajuste con signo sobre un lote
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "batch_id y delta (positivo o negativo)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *LedgerHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Adjust(c.Context(), ledger.AdjustInput{
		BatchID: in.BatchID,
		Delta:   in.Delta,
		Remarks: in.Remarks,
		EntryBy: entryBy(c, in.EntryBy),
	}); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "ajuste registrado"})
}

// Transfer godoc
// @Summary      Traslado entre ubicaciones (crea lote destino)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "source_batch_id, destination_location, cantidad"
// @Success      201   {object}  dto.TransferResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *LedgerHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Transfer(c.Context(), ledger.TransferInput{
		SourceBatchID:       in.SourceBatchID,
		DestinationLocation: in.DestinationLocation,
		Quantity:            in.Quantity,
		Remarks:             in.Remarks,
		EntryBy:             entryBy(c, in.EntryBy),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		DestinationBatchID: res.DestinationBatchID,
		TransferID:         res.TransferID,
	})
}

// ListRecords godoc
// @Summary      Historial del libro de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "búsqueda por palabras clave (AND)"
// @Param        limit   query  int     false  "por defecto 100"
// @Param        offset  query  int     false  "por defecto 0"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/inventory/records [get]
func (h *LedgerHandler) ListRecords(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	entries, err := h.reportUC.History(limit, offset, c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromLedgerEntry(e))
	}
	return c.JSON(out)
}

// EditRecord godoc
// @Summary      Corrección: reescribir cantidad/fecha/remarks de un registro
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.EditTransactionRequest  true  "nueva cantidad, fecha y remarks"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/records/{id} [put]
func (h *LedgerHandler) EditRecord(c *fiber.Ctx) error {
	var in dto.EditTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida (YYYY-MM-DD)"})
	}
	if err := h.uc.EditTransaction(c.Context(), ledger.EditTransactionInput{
		EntryID:  c.Params("id"),
		Quantity: in.Quantity,
		Date:     date,
		Remarks:  in.Remarks,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro actualizado y lote reconciliado"})
}

// DeleteRecord godoc
// @Summary      Corrección: eliminar un registro deshaciendo su efecto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/records/{id} [delete]
func (h *LedgerHandler) DeleteRecord(c *fiber.Ctx) error {
	res, err := h.uc.DeleteTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := dto.MessageResponse{Message: "registro eliminado y stock del lote reconciliado"}
	if res.BatchMissing {
		out.Message = "registro eliminado"
		out.Warning = "el lote asociado ya no existía; se eliminó el registro huérfano"
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rolexfittings/pipestock-api/internal/application/dto"
	"github.com/rolexfittings/pipestock-api/internal/application/report"
)

// ReportHandler maneja el reporte de stock agregado, el export CSV y el
// resumen narrado (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func filterFromQuery(c *fiber.Ctx) report.StockFilter {
	return report.StockFilter{
		Category:      c.Query("category"),
		Grade:         c.Query("grade"),
		Size:          c.Query("size"),
		Schedule:      c.Query("schedule"),
		Origin:        c.Query("origin"),
		SeamCondition: c.Query("seam_condition"),
		Location:      c.Query("location"),
		Query:         c.Query("q"),
	}
}

// Stock godoc
// @Summary      Reporte de stock agregado por clave de identidad
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "filtro por categoría"
// @Param        q         query  string  false  "búsqueda por palabras clave (AND)"
// @Success      200  {array}  dto.StockRowDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	rows, err := h.uc.Stock(filterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FromStockRow(row))
	}
	return c.JSON(fiber.Map{"total": len(out), "rows": out})
}

// Export godoc
// @Summary      Export CSV del reporte de stock filtrado
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/stock/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	csv, err := h.uc.ExportCSV(filterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory_report.csv"`)
	return c.SendString(csv)
}

// Summary godoc
// @Summary      Resumen narrado del stock actual (servicio externo de texto)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [post]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	text, err := h.uc.Summary(c.Context(), filterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SummaryResponse{Summary: text})
}

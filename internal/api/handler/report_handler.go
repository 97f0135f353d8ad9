package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unerg-ais/reporting-system/internal/api/metrics"
	"github.com/unerg-ais/reporting-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for incident report operations.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// List handles GET /api/reportes — all reports, newest first.
//
// @Summary      List all incident reports
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   reportResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/reportes [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.service.ListReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(reports))
}

// Create handles POST /api/reportes — the public submission endpoint.
//
// @Summary      Submit a new incident report
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Param        body  body      createReportRequest  true  "Report details"
// @Success      201   {object}  reportResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/reportes [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ReportsRejectedTotal.WithLabelValues("missing_fields").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	report, err := h.service.CreateReport(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.WithLabelValues(report.Categoria).Inc()
	return c.JSON(http.StatusCreated, toReportResponse(report))
}

// Update handles PUT /api/reportes/:id — partial field update.
//
// @Summary      Update an incident report
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Report id"
// @Param        body  body      updateReportRequest  true  "Fields to change"
// @Success      200   {object}  reportResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/reportes/{id} [put]
func (h *ReportHandler) Update(c echo.Context) error {
	var req updateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	report, err := h.service.UpdateReport(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReportResponse(report))
}

// Delete handles DELETE /api/reportes/:id — permanent removal.
//
// @Summary      Delete an incident report
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Report id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/reportes/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteReport(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Reporte eliminado correctamente"})
}

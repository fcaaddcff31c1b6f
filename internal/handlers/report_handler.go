package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investadmin/internal/logger"
	"investadmin/internal/services"
)

// ReportHandler handles CSV report generation.
type ReportHandler struct {
	reportService services.ReportServicer
	exposeStack   bool
}

// NewReportHandler creates a new ReportHandler. exposeStack adds the full
// error chain to failure responses and should be false in production.
func NewReportHandler(reportService services.ReportServicer, exposeStack bool) *ReportHandler {
	return &ReportHandler{reportService: reportService, exposeStack: exposeStack}
}

// GenerateReport builds the investments CSV, saves it and sends it to the investments service.
// @Summary     Generate investments report
// @Description Join investments with financial companies, save the CSV locally and forward it to the export endpoint
// @Tags        reports
// @Produce     json
// @Success     200 {object} MessageResponse "CSV report generated and sent."
// @Failure     500 {object} ReportErrorResponse "Saving or generating failed"
// @Router      /generate-report [get]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	result, err := h.reportService.Generate(c.Request.Context())
	if err != nil {
		respondWithReportError(c, err, h.exposeStack)
		return
	}

	logger.Get().Infow("report generated",
		"report_id", result.ID,
		"rows", result.Rows,
		"bytes", result.Bytes,
		"path", result.Path,
	)
	c.JSON(http.StatusOK, MessageResponse{Message: "CSV report generated and sent."})
}

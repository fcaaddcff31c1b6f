package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investadmin/internal/services"
)

// InvestmentHandler handles investment lookups.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// GetInvestment handles retrieving a single investment from the investments service.
// @Summary     Get investment by ID
// @Description Proxy an investment lookup to the investments service and return its body unchanged
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     200 {object} object "Investment as returned by the investments service"
// @Failure     404 {object} MessageResponse "Investment not found"
// @Failure     500 "Upstream failure"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	raw, err := h.investmentService.GetInvestment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	contentType := raw.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(http.StatusOK, contentType, raw.Body)
}

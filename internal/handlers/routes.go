package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the admin endpoints on r.
func RegisterRoutes(r gin.IRouter, investments *InvestmentHandler, reports *ReportHandler) {
	r.GET("/investments/:id", investments.GetInvestment)
	r.GET("/generate-report", reports.GenerateReport)
}

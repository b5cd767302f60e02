package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/services"
)

// ReportController serves dashboard aggregates
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetDashboardStats returns the placement dashboard summary
// @Summary Dashboard statistics
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.DashboardStats}
// @Router /dashboard/stats [get]
func (c *ReportController) GetDashboardStats(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.reportService.DashboardStats(ctx))
}

// GetCRTFeeStatusReport returns student counts per CRT fee status
func (c *ReportController) GetCRTFeeStatusReport(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.reportService.CRTFeeStatusReport(ctx))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/middleware"
)

// DriveController handles recruitment drive operations
type DriveController struct {
	driveService services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService services.DriveService) *DriveController {
	return &DriveController{driveService: driveService}
}

// CreateDrive schedules a drive in the upcoming state
// @Summary Schedule a drive
// @Tags drives
// @Accept json
// @Produce json
// @Param request body dto.DriveRequest true "Drive information"
// @Success 201 {object} dto.APIResponse{data=models.Drive}
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /drives [post]
func (c *DriveController) CreateDrive(ctx *gin.Context) {
	req := middleware.Body[dto.DriveRequest](ctx)
	drive, err := c.driveService.Create(ctx, req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, drive)
}

func (c *DriveController) GetDriveByID(ctx *gin.Context) {
	drive, err := c.driveService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, drive)
}

// UpdateDrive edits drive details. Company and status are not editable here.
func (c *DriveController) UpdateDrive(ctx *gin.Context) {
	req := middleware.Body[dto.DriveRequest](ctx)
	drive, err := c.driveService.Update(ctx, ctx.Param("id"), req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, drive)
}

func (c *DriveController) DeleteDrive(ctx *gin.Context) {
	if err := c.driveService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Drive deleted successfully"})
}

// GetAllDrives lists drives, optionally by status and company
// @Summary List drives
// @Tags drives
// @Produce json
// @Param status query string false "Filter by drive status"
// @Param companyId query string false "Filter by company"
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse}
// @Router /drives [get]
func (c *DriveController) GetAllDrives(ctx *gin.Context) {
	respondPage(ctx, c.driveService.List(ctx, placement.DriveFilter{
		Status:    models.DriveStatus(ctx.Query("status")),
		CompanyID: ctx.Query("companyId"),
	}))
}

// UpdateDriveStatus moves a drive along its lifecycle
// @Summary Change drive status
// @Tags drives
// @Accept json
// @Produce json
// @Param id path string true "Drive ID"
// @Param request body dto.UpdateDriveStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.Drive}
// @Failure 422 {object} dto.APIResponse "Transition not allowed"
// @Router /drives/{id}/status [put]
func (c *DriveController) UpdateDriveStatus(ctx *gin.Context) {
	req := middleware.Body[dto.UpdateDriveStatusRequest](ctx)
	drive, err := c.driveService.UpdateStatus(ctx, ctx.Param("id"), models.DriveStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, drive)
}

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

// ApplicationController handles student applications to drives
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// CreateApplication registers a student for a drive
// @Summary Apply to a drive
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Student and drive"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 404 {object} dto.APIResponse "Student or drive not found"
// @Failure 409 {object} dto.APIResponse "Application already exists"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	req := middleware.Body[dto.CreateApplicationRequest](ctx)
	app, err := c.applicationService.Create(ctx, req.StudentID, req.DriveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, app)
}

func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	app, err := c.applicationService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, app)
}

func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	if err := c.applicationService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Application deleted successfully"})
}

// GetAllApplications lists applications with optional filters
func (c *ApplicationController) GetAllApplications(ctx *gin.Context) {
	respondPage(ctx, c.applicationService.List(ctx, placement.ApplicationFilter{
		StudentID: ctx.Query("studentId"),
		DriveID:   ctx.Query("driveId"),
		Status:    models.ApplicationStatus(ctx.Query("status")),
	}))
}

// UpdateApplicationStatus moves an application along its lifecycle
// @Summary Change application status
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 409 {object} dto.APIResponse "An offer letter depends on the selection"
// @Failure 422 {object} dto.APIResponse "Transition not allowed"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	req := middleware.Body[dto.UpdateApplicationStatusRequest](ctx)
	app, err := c.applicationService.UpdateStatus(ctx, ctx.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, app)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/pkg/helpers"
)

// Controllers holds every HTTP controller
type Controllers struct {
	Students     *StudentController
	Companies    *CompanyController
	Drives       *DriveController
	Applications *ApplicationController
	Offers       *OfferLetterController
	Reports      *ReportController
}

// NewControllers creates the controllers over the service layer
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Students:     NewStudentController(svc.Students),
		Companies:    NewCompanyController(svc.Companies),
		Drives:       NewDriveController(svc.Drives),
		Applications: NewApplicationController(svc.Applications),
		Offers:       NewOfferLetterController(svc.Offers),
		Reports:      NewReportController(svc.Reports),
	}
}

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewAPIResponse(data))
}

// respondPage writes one page of an already ordered list
func respondPage[T any](ctx *gin.Context, items []T) {
	page, size := helpers.ParsePaginationParams(ctx)
	respond(ctx, http.StatusOK, helpers.Paginate(items, page, size))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
)

// CompanyController handles company-related operations
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateCompany handles company creation
// @Summary Onboard a company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.CompanyRequest true "Company information"
// @Success 201 {object} dto.APIResponse{data=models.Company}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	req := middleware.Body[dto.CompanyRequest](ctx)
	company, err := c.companyService.Create(ctx, req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, company)
}

func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	company, err := c.companyService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, company)
}

func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	req := middleware.Body[dto.CompanyRequest](ctx)
	company, err := c.companyService.Update(ctx, ctx.Param("id"), req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, company)
}

// DeleteCompany removes a company that no drive refers to
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	if err := c.companyService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Company deleted successfully"})
}

func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	respondPage(ctx, c.companyService.List(ctx))
}

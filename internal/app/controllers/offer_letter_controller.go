package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/middleware"
)

// OfferLetterController handles offer letters
type OfferLetterController struct {
	offerService services.OfferLetterService
}

// NewOfferLetterController creates a new OfferLetterController
func NewOfferLetterController(offerService services.OfferLetterService) *OfferLetterController {
	return &OfferLetterController{offerService: offerService}
}

// CreateOfferLetter issues an offer for a selected application
// @Summary Issue an offer letter
// @Tags offer-letters
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferLetterRequest true "Offer terms"
// @Success 201 {object} dto.APIResponse{data=dto.OfferLetterResponse}
// @Failure 409 {object} dto.APIResponse "Offer letter already exists"
// @Failure 422 {object} dto.APIResponse "Application is not selected"
// @Router /offer-letters [post]
func (c *OfferLetterController) CreateOfferLetter(ctx *gin.Context) {
	req := middleware.Body[dto.CreateOfferLetterRequest](ctx)
	offer, err := c.offerService.Issue(ctx, req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, offer)
}

func (c *OfferLetterController) GetOfferLetterByID(ctx *gin.Context) {
	offer, err := c.offerService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, offer)
}

// UpdateOfferLetter revises the terms and re-renders the letter
func (c *OfferLetterController) UpdateOfferLetter(ctx *gin.Context) {
	req := middleware.Body[dto.UpdateOfferLetterRequest](ctx)
	offer, err := c.offerService.Update(ctx, ctx.Param("id"), req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, offer)
}

func (c *OfferLetterController) DeleteOfferLetter(ctx *gin.Context) {
	if err := c.offerService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Offer letter deleted successfully"})
}

func (c *OfferLetterController) GetAllOfferLetters(ctx *gin.Context) {
	respondPage(ctx, c.offerService.List(ctx, placement.OfferFilter{
		StudentID: ctx.Query("studentId"),
		DriveID:   ctx.Query("driveId"),
	}))
}

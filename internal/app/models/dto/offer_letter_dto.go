package dto

import (
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
)

// CreateOfferLetterRequest issues an offer for a selected application
type CreateOfferLetterRequest struct {
	StudentID   string  `json:"student_id" binding:"required"`
	DriveID     string  `json:"drive_id" binding:"required"`
	FinalCTC    float64 `json:"final_ctc"`
	JoiningDate Date    `json:"joining_date"`
}

// ToInput converts the request to a store input
func (r CreateOfferLetterRequest) ToInput() placement.OfferInput {
	return placement.OfferInput{
		StudentID:   r.StudentID,
		DriveID:     r.DriveID,
		FinalCTC:    r.FinalCTC,
		JoiningDate: r.JoiningDate.Time,
	}
}

// UpdateOfferLetterRequest revises the terms of an issued offer
type UpdateOfferLetterRequest struct {
	FinalCTC    float64 `json:"final_ctc"`
	JoiningDate Date    `json:"joining_date"`
}

// ToInput converts the request to a store input
func (r UpdateOfferLetterRequest) ToInput() placement.OfferUpdate {
	return placement.OfferUpdate{FinalCTC: r.FinalCTC, JoiningDate: r.JoiningDate.Time}
}

// OfferLetterResponse is an offer letter with its rendering payload
type OfferLetterResponse struct {
	models.OfferLetter
	StudentName   string `json:"student_name"`
	StudentRollNo string `json:"student_roll_no"`
	CompanyName   string `json:"company_name"`
	Role          string `json:"role"`
}

// NewOfferLetterResponse joins an offer with its payload fields
func NewOfferLetterResponse(o models.OfferLetter, p models.OfferPayload) OfferLetterResponse {
	return OfferLetterResponse{
		OfferLetter:   o,
		StudentName:   p.StudentName,
		StudentRollNo: p.StudentRollNo,
		CompanyName:   p.CompanyName,
		Role:          p.Role,
	}
}

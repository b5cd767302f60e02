package dto

import (
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
)

// StudentRequest is the body of student create and update calls. Range and
// enum rules are enforced by the placement store.
type StudentRequest struct {
	Name                   string   `json:"name" binding:"required,max=200"`
	RollNo                 string   `json:"roll_no" binding:"required,max=50"`
	Branch                 string   `json:"branch" binding:"required"`
	Section                string   `json:"section" binding:"required"`
	Year                   int      `json:"year"`
	SSCPercentage          float64  `json:"ssc_percentage"`
	InterDiplomaPercentage float64  `json:"inter_diploma_percentage"`
	CGPA                   float64  `json:"cgpa"`
	BacklogsCount          int      `json:"backlogs_count"`
	BacklogStatus          string   `json:"backlog_status" binding:"required"`
	YearOfPassing          int      `json:"year_of_passing"`
	Email                  string   `json:"email" binding:"required,email"`
	Phone                  string   `json:"phone" binding:"required"`
	ResumeURL              *string  `json:"resume_url" binding:"omitempty,url"`
	Skills                 []string `json:"skills"`
	CRTFeeStatus           string   `json:"crt_fee_status" binding:"required"`
	CRTFeeAmount           float64  `json:"crt_fee_amount"`
	CRTReceiptNumber       *string  `json:"crt_receipt_number"`
}

// ToInput converts the request to a store input
func (r StudentRequest) ToInput() placement.StudentInput {
	return placement.StudentInput{
		Name:                   r.Name,
		RollNo:                 r.RollNo,
		Branch:                 r.Branch,
		Section:                r.Section,
		Year:                   r.Year,
		SSCPercentage:          r.SSCPercentage,
		InterDiplomaPercentage: r.InterDiplomaPercentage,
		CGPA:                   r.CGPA,
		BacklogsCount:          r.BacklogsCount,
		BacklogStatus:          models.BacklogStatus(r.BacklogStatus),
		YearOfPassing:          r.YearOfPassing,
		Email:                  r.Email,
		Phone:                  r.Phone,
		ResumeURL:              r.ResumeURL,
		Skills:                 r.Skills,
		CRTFeeStatus:           models.CRTFeeStatus(r.CRTFeeStatus),
		CRTFeeAmount:           r.CRTFeeAmount,
		CRTReceiptNumber:       r.CRTReceiptNumber,
	}
}

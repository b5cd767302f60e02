package dto

import "github.com/yigit/placement/internal/app/models"

// CreateApplicationRequest registers a student for a drive
type CreateApplicationRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	DriveID   string `json:"drive_id" binding:"required"`
}

// UpdateApplicationStatusRequest moves an application to another state
type UpdateApplicationStatusRequest struct {
	Status string `json:"application_status" binding:"required"`
}

// ApplicationResponse is an application with the names the UI shows next to it
type ApplicationResponse struct {
	models.Application
	StudentName   string `json:"student_name"`
	StudentRollNo string `json:"student_roll_no"`
	CompanyName   string `json:"company_name"`
	Role          string `json:"role"`
}

// NewApplicationResponse joins an application with its student and drive
func NewApplicationResponse(a models.Application, s models.Student, d models.Drive) ApplicationResponse {
	return ApplicationResponse{
		Application:   a,
		StudentName:   s.Name,
		StudentRollNo: s.RollNo,
		CompanyName:   d.CompanyName,
		Role:          d.Role,
	}
}

package dto

import "github.com/yigit/placement/internal/domain/placement"

// CompanyRequest is the body of company create and update calls
type CompanyRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Industry    string  `json:"industry"`
	Location    string  `json:"location"`
}

// ToInput converts the request to a store input
func (r CompanyRequest) ToInput() placement.CompanyInput {
	return placement.CompanyInput{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		Industry:    r.Industry,
		Location:    r.Location,
	}
}

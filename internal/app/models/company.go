package models

import "time"

// Company is a recruiter onboarded to the placement cell
type Company struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Industry    string    `json:"industry" db:"industry"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Clone returns a copy that shares no pointers with c
func (c Company) Clone() Company {
	out := c
	out.Website = cloneString(c.Website)
	return out
}

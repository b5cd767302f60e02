package placement

import (
	"strings"
	"time"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/validation"
)

// StudentInput holds the editable fields of a student
type StudentInput struct {
	Name                   string
	RollNo                 string
	Branch                 string
	Section                string
	Year                   int
	SSCPercentage          float64
	InterDiplomaPercentage float64
	CGPA                   float64
	BacklogsCount          int
	BacklogStatus          models.BacklogStatus
	YearOfPassing          int
	Email                  string
	Phone                  string
	ResumeURL              *string
	Skills                 []string
	CRTFeeStatus           models.CRTFeeStatus
	CRTFeeAmount           float64
	CRTReceiptNumber       *string
}

// CompanyInput holds the editable fields of a company
type CompanyInput struct {
	Name        string
	Description string
	Website     *string
	Industry    string
	Location    string
}

// DriveInput holds the creatable fields of a drive. Status is never part of
// an input; it changes only through TransitionDrive.
type DriveInput struct {
	CompanyID           string
	Role                string
	JobDescription      string
	CTC                 float64
	EligibilityCriteria string
	DriveDate           time.Time
	Location            string
}

// OfferInput is the request to issue an offer letter
type OfferInput struct {
	StudentID   string
	DriveID     string
	FinalCTC    float64
	JoiningDate time.Time
}

// OfferUpdate holds the editable fields of an issued offer
type OfferUpdate struct {
	FinalCTC    float64
	JoiningDate time.Time
}

func requireText(field, value string) error {
	if !validation.NewStringValidation(strings.TrimSpace(value)).
		WithMaxLength(validation.NameMaxLength).Validate() {
		return apperrors.NewValidationError(field, field+" is required")
	}
	return nil
}

func inRange(field string, value, min, max float64) error {
	if !validation.NewNumericValidation(value).WithMin(min).WithMax(max).Validate() {
		return apperrors.NewOutOfRangeError(field, field+" out of range")
	}
	return nil
}

func nonNegative(field string, value float64) error {
	if !validation.NewNumericValidation(value).WithMin(0).Validate() {
		return apperrors.NewOutOfRangeError(field, field+" must not be negative")
	}
	return nil
}

func validateStudent(in *StudentInput, strictBacklog bool) error {
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"roll_no", in.RollNo},
		{"branch", in.Branch},
		{"section", in.Section},
		{"phone", in.Phone},
	} {
		if err := requireText(f.name, f.value); err != nil {
			return err
		}
	}
	if !validation.NewStringValidation(strings.TrimSpace(in.Email)).
		WithPattern(validation.CompiledPatterns.Email).Validate() {
		return apperrors.NewValidationError("email", "email is invalid")
	}
	if !in.BacklogStatus.Valid() {
		return apperrors.NewValidationError("backlog_status", "unknown backlog status")
	}
	if !in.CRTFeeStatus.Valid() {
		return apperrors.NewValidationError("crt_fee_status", "unknown CRT fee status")
	}

	if err := inRange("year", float64(in.Year), 1, 4); err != nil {
		return err
	}
	if err := inRange("ssc_percentage", in.SSCPercentage, 0, 100); err != nil {
		return err
	}
	if err := inRange("inter_diploma_percentage", in.InterDiplomaPercentage, 0, 100); err != nil {
		return err
	}
	if err := inRange("cgpa", in.CGPA, 0, 10); err != nil {
		return err
	}
	if err := nonNegative("backlogs_count", float64(in.BacklogsCount)); err != nil {
		return err
	}
	if in.YearOfPassing <= 0 {
		return apperrors.NewOutOfRangeError("year_of_passing", "year_of_passing must be positive")
	}
	if err := nonNegative("crt_fee_amount", in.CRTFeeAmount); err != nil {
		return err
	}

	if strictBacklog && (in.BacklogStatus == models.BacklogNotApplicable) != (in.BacklogsCount == 0) {
		return apperrors.NewOutOfRangeError("backlog_status", "backlog_status must be not_applicable exactly when backlogs_count is 0")
	}
	return nil
}

func validateCompany(in *CompanyInput) error {
	return requireText("name", in.Name)
}

func validateDrive(in *DriveInput) error {
	if err := requireText("company_id", in.CompanyID); err != nil {
		return err
	}
	if err := requireText("role", in.Role); err != nil {
		return err
	}
	if in.DriveDate.IsZero() {
		return apperrors.NewValidationError("drive_date", "drive_date is required")
	}
	return nonNegative("ctc", in.CTC)
}

func validateOfferTerms(finalCTC float64, joining time.Time) error {
	if err := nonNegative("final_ctc", finalCTC); err != nil {
		return err
	}
	if joining.IsZero() {
		return apperrors.NewValidationError("joining_date", "joining_date is required")
	}
	return nil
}

// normalizeSkills trims tags and drops empty ones, keeping order
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func optionalText(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

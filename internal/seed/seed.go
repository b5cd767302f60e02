package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

var demoCompanies = []placement.CompanyInput{
	{Name: "Infosys", Industry: "IT Services", Location: "Bengaluru"},
	{Name: "Zoho", Industry: "SaaS", Location: "Chennai"},
}

var demoStudents = []struct {
	name, rollNo, branch string
	cgpa                 float64
	backlogs             int
	fee                  models.CRTFeeStatus
}{
	{"Ananya Rao", "21A91A0501", "CSE", 8.9, 0, models.CRTFeePaid},
	{"Karthik Reddy", "21A91A0502", "CSE", 7.4, 1, models.CRTFeePartial},
	{"Divya Sharma", "21A91A0401", "ECE", 8.1, 0, models.CRTFeePending},
	{"Rahul Varma", "21A91A0201", "EEE", 6.8, 2, models.CRTFeeExempted},
}

// CreateDemoData fills an empty store with a small placement season so the
// dashboard has something to show. A store that already has students is left
// alone.
func CreateDemoData(ctx context.Context, store *placement.Store, lgr zerolog.Logger) error {
	if len(store.ListStudents(placement.StudentFilter{})) > 0 {
		lgr.Info().Msg("Store already has students, skipping demo data")
		return nil
	}
	lgr.Info().Msg("Creating demo data...")

	var finalErr error

	var companyIDs []string
	for _, in := range demoCompanies {
		c, err := store.CreateCompany(ctx, in)
		if err != nil {
			lgr.Error().Err(err).Str("company", in.Name).Msg("Error creating demo company")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		companyIDs = append(companyIDs, c.ID)
	}

	var studentIDs []string
	for _, s := range demoStudents {
		status := models.BacklogNotApplicable
		if s.backlogs > 0 {
			status = models.BacklogPending
		}
		st, err := store.CreateStudent(ctx, placement.StudentInput{
			Name:                   s.name,
			RollNo:                 s.rollNo,
			Branch:                 s.branch,
			Section:                "A",
			Year:                   4,
			SSCPercentage:          88,
			InterDiplomaPercentage: 85,
			CGPA:                   s.cgpa,
			BacklogsCount:          s.backlogs,
			BacklogStatus:          status,
			YearOfPassing:          2025,
			Email:                  s.rollNo + "@students.example.edu",
			Phone:                  "9000000000",
			Skills:                 []string{"Java", "SQL"},
			CRTFeeStatus:           s.fee,
			CRTFeeAmount:           5000,
		})
		if err != nil && !errors.Is(err, apperrors.ErrDuplicateRollNumber) {
			lgr.Error().Err(err).Str("rollNo", s.rollNo).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err == nil {
			studentIDs = append(studentIDs, st.ID)
		}
	}

	if len(companyIDs) == 0 || len(studentIDs) == 0 {
		return finalErr
	}

	drive, err := store.CreateDrive(ctx, placement.DriveInput{
		CompanyID:           companyIDs[0],
		Role:                "Systems Engineer",
		JobDescription:      "Application development and support",
		CTC:                 360000,
		EligibilityCriteria: "CGPA 6.0 and above",
		DriveDate:           time.Now().AddDate(0, 0, 14),
		Location:            "Hyderabad",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo drive")
		return errors.Join(finalErr, err)
	}

	for _, id := range studentIDs {
		if _, err := store.CreateApplication(ctx, id, drive.ID); err != nil {
			lgr.Error().Err(err).Str("studentID", id).Msg("Error creating demo application")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("companies", len(companyIDs)).Int("students", len(studentIDs)).Msg("Demo data created")
	return finalErr
}

package placement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/models"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
	}
	return NewStore(append(base, opts...)...)
}

func studentInput(name, rollNo string, backlogs int) StudentInput {
	status := models.BacklogNotApplicable
	if backlogs > 0 {
		status = models.BacklogPending
	}
	return StudentInput{
		Name:                   name,
		RollNo:                 rollNo,
		Branch:                 "CSE",
		Section:                "A",
		Year:                   4,
		SSCPercentage:          91.5,
		InterDiplomaPercentage: 88,
		CGPA:                   8.5,
		BacklogsCount:          backlogs,
		BacklogStatus:          status,
		YearOfPassing:          2026,
		Email:                  rollNo + "@college.edu",
		Phone:                  "9876543210",
		Skills:                 []string{"Go", " SQL ", ""},
		CRTFeeStatus:           models.CRTFeePaid,
		CRTFeeAmount:           5000,
	}
}

func driveInput(companyID string) DriveInput {
	return DriveInput{
		CompanyID:           companyID,
		Role:                "Software Engineer",
		JobDescription:      "Backend services",
		CTC:                 1200000,
		EligibilityCriteria: "CGPA >= 7",
		DriveDate:           testNow.Add(72 * time.Hour),
		Location:            "Hyderabad",
	}
}

// fixture builds the Asha/Ravi/Acme world used across tests
type fixture struct {
	store   *Store
	asha    models.Student
	ravi    models.Student
	acme    models.Company
	drive   models.Drive
	ashaApp models.Application
	raviApp models.Application
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{store: newTestStore(opts...)}

	var err error
	f.asha, err = f.store.CreateStudent(ctx, studentInput("Asha", "R001", 0))
	require.NoError(t, err)
	f.ravi, err = f.store.CreateStudent(ctx, studentInput("Ravi", "R002", 2))
	require.NoError(t, err)
	f.acme, err = f.store.CreateCompany(ctx, CompanyInput{Name: "Acme", Industry: "Software", Location: "Pune"})
	require.NoError(t, err)
	f.drive, err = f.store.CreateDrive(ctx, driveInput(f.acme.ID))
	require.NoError(t, err)
	f.ashaApp, err = f.store.CreateApplication(ctx, f.asha.ID, f.drive.ID)
	require.NoError(t, err)
	f.raviApp, err = f.store.CreateApplication(ctx, f.ravi.ID, f.drive.ID)
	require.NoError(t, err)
	return f
}

func (f *fixture) selectAsha(t *testing.T) models.Application {
	t.Helper()
	ctx := context.Background()
	_, err := f.store.TransitionApplication(ctx, f.ashaApp.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	app, err := f.store.TransitionApplication(ctx, f.ashaApp.ID, models.ApplicationSelected)
	require.NoError(t, err)
	return app
}

// recordingPersister records changes and optionally fails
type recordingPersister struct {
	mu      sync.Mutex
	changes []Change
	fail    error
}

func (p *recordingPersister) Persist(_ context.Context, change Change) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.changes = append(p.changes, change)
	return nil
}

var errDiskFull = errors.New("disk full")

type stubRenderer struct{}

func (stubRenderer) Render(p models.OfferPayload) (string, error) {
	return fmt.Sprintf("%s joins %s as %s", p.StudentName, p.CompanyName, p.Role), nil
}

package placement

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

func TestPlacementWorkflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, WithLetterRenderer(stubRenderer{}))

	t.Run("registration", func(t *testing.T) {
		stats := f.store.DashboardStats()
		assert.Equal(t, 2, stats.TotalStudents)
		assert.Equal(t, 2, stats.TotalApplications)
		assert.Equal(t, 0, stats.SelectedStudents)
		assert.Equal(t, 0, stats.PlacementRate)
		assert.Equal(t, 1, stats.UpcomingDrives)
		assert.Equal(t, 1, stats.StudentsWithBacklogs)
	})

	t.Run("selection", func(t *testing.T) {
		app := f.selectAsha(t)
		assert.Equal(t, models.ApplicationSelected, app.Status)
		require.NotNil(t, app.SelectedDate)
		assert.Equal(t, testNow, *app.SelectedDate)

		stats := f.store.DashboardStats()
		assert.Equal(t, 1, stats.SelectedStudents)
		assert.Equal(t, 50, stats.PlacementRate)
	})

	t.Run("offers", func(t *testing.T) {
		joining := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		offer, payload, err := f.store.IssueOffer(ctx, OfferInput{
			StudentID: f.asha.ID, DriveID: f.drive.ID, FinalCTC: 1200000, JoiningDate: joining,
		})
		require.NoError(t, err)
		assert.Equal(t, testNow, offer.OfferDate)
		assert.Equal(t, "Asha joins Acme as Software Engineer", offer.LetterContent)
		assert.Equal(t, "R001", payload.StudentRollNo)
		assert.Equal(t, f.acme.ID, payload.CompanyID)

		_, _, err = f.store.IssueOffer(ctx, OfferInput{
			StudentID: f.asha.ID, DriveID: f.drive.ID, FinalCTC: 1300000, JoiningDate: joining,
		})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateOffer)

		_, _, err = f.store.IssueOffer(ctx, OfferInput{
			StudentID: f.ravi.ID, DriveID: f.drive.ID, FinalCTC: 1200000, JoiningDate: joining,
		})
		assert.ErrorIs(t, err, apperrors.ErrIneligibleOffer)

		assert.Len(t, f.store.ListOffers(OfferFilter{}), 1)
		assert.Equal(t, 1, f.store.DashboardStats().TotalOffers)
	})
}

func TestIssueOffer_Preconditions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	joining := testNow.AddDate(0, 4, 0)

	_, _, err := f.store.IssueOffer(ctx, OfferInput{StudentID: "ghost", DriveID: f.drive.ID, FinalCTC: 1, JoiningDate: joining})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, _, err = f.store.IssueOffer(ctx, OfferInput{StudentID: f.asha.ID, DriveID: "ghost", FinalCTC: 1, JoiningDate: joining})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	other, err := f.store.CreateDrive(ctx, driveInput(f.acme.ID))
	require.NoError(t, err)
	_, _, err = f.store.IssueOffer(ctx, OfferInput{StudentID: f.asha.ID, DriveID: other.ID, FinalCTC: 1, JoiningDate: joining})
	assert.ErrorIs(t, err, apperrors.ErrIneligibleOffer)

	_, _, err = f.store.IssueOffer(ctx, OfferInput{StudentID: f.asha.ID, DriveID: f.drive.ID, FinalCTC: -5, JoiningDate: joining})
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)

	_, _, err = f.store.IssueOffer(ctx, OfferInput{StudentID: f.asha.ID, DriveID: f.drive.ID, FinalCTC: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, f.store.ListOffers(OfferFilter{}))
}

func TestUpdateOffer_Rerenders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, WithLetterRenderer(stubRenderer{}))
	f.selectAsha(t)
	offer, _, err := f.store.IssueOffer(ctx, OfferInput{StudentID: f.asha.ID, DriveID: f.drive.ID, FinalCTC: 100, JoiningDate: testNow})
	require.NoError(t, err)

	later := testNow.AddDate(0, 1, 0)
	updated, err := f.store.UpdateOffer(ctx, offer.ID, OfferUpdate{FinalCTC: 200, JoiningDate: later})
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.FinalCTC)
	assert.Equal(t, later, updated.JoiningDate)
	assert.Equal(t, offer.OfferDate, updated.OfferDate)
	assert.NotEmpty(t, updated.LetterContent)

	payload, err := f.store.OfferPayload(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, payload.FinalCTC)
}

func TestTransitionDrive_Table(t *testing.T) {
	all := []models.DriveStatus{models.DriveUpcoming, models.DriveOngoing, models.DriveCompleted, models.DriveCancelled}
	allowed := map[models.DriveStatus][]models.DriveStatus{
		models.DriveUpcoming: {models.DriveOngoing, models.DriveCancelled},
		models.DriveOngoing:  {models.DriveCompleted, models.DriveCancelled},
	}
	// paths from upcoming that reach each state
	paths := map[models.DriveStatus][]models.DriveStatus{
		models.DriveUpcoming:  nil,
		models.DriveOngoing:   {models.DriveOngoing},
		models.DriveCompleted: {models.DriveOngoing, models.DriveCompleted},
		models.DriveCancelled: {models.DriveCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				ctx := context.Background()
				store := newTestStore()
				company, err := store.CreateCompany(ctx, CompanyInput{Name: "Acme"})
				require.NoError(t, err)
				drive, err := store.CreateDrive(ctx, driveInput(company.ID))
				require.NoError(t, err)
				for _, step := range paths[from] {
					_, err = store.TransitionDrive(ctx, drive.ID, step)
					require.NoError(t, err)
				}

				_, err = store.TransitionDrive(ctx, drive.ID, to)
				if contains(allowed[from], to) {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
					got, getErr := store.GetDrive(drive.ID)
					require.NoError(t, getErr)
					assert.Equal(t, from, got.Status)
				}
			})
		}
	}
}

func TestTransitionDrive_CompletionWaitsForDecisions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.store.TransitionDrive(ctx, f.drive.ID, models.DriveOngoing)
	require.NoError(t, err)

	_, err = f.store.TransitionDrive(ctx, f.drive.ID, models.DriveCompleted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	f.selectAsha(t)
	_, err = f.store.TransitionApplication(ctx, f.raviApp.ID, models.ApplicationRejected)
	require.NoError(t, err)

	drive, err := f.store.TransitionDrive(ctx, f.drive.ID, models.DriveCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.DriveCompleted, drive.Status)

	_, err = f.store.TransitionDrive(ctx, f.drive.ID, models.DriveOngoing)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransitionApplication_Table(t *testing.T) {
	cases := []struct {
		from    []models.ApplicationStatus
		to      models.ApplicationStatus
		allowed bool
	}{
		{nil, models.ApplicationShortlisted, true},
		{nil, models.ApplicationRejected, true},
		{nil, models.ApplicationSelected, false},
		{nil, models.ApplicationApplied, false},
		{[]models.ApplicationStatus{models.ApplicationShortlisted}, models.ApplicationSelected, true},
		{[]models.ApplicationStatus{models.ApplicationShortlisted}, models.ApplicationRejected, true},
		{[]models.ApplicationStatus{models.ApplicationShortlisted}, models.ApplicationApplied, false},
		{[]models.ApplicationStatus{models.ApplicationShortlisted, models.ApplicationSelected}, models.ApplicationRejected, true},
		{[]models.ApplicationStatus{models.ApplicationShortlisted, models.ApplicationSelected}, models.ApplicationShortlisted, false},
		{[]models.ApplicationStatus{models.ApplicationRejected}, models.ApplicationShortlisted, false},
		{[]models.ApplicationStatus{models.ApplicationRejected}, models.ApplicationApplied, false},
		{nil, "interviewing", false},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%v->%s", tc.from, tc.to)
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			for _, step := range tc.from {
				_, err := f.store.TransitionApplication(ctx, f.ashaApp.ID, step)
				require.NoError(t, err)
			}

			_, err := f.store.TransitionApplication(ctx, f.ashaApp.ID, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
			}
		})
	}
}

func TestTransitionApplication_RevocationKeepsSelectedDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	selected := f.selectAsha(t)

	rejected, err := f.store.TransitionApplication(ctx, f.ashaApp.ID, models.ApplicationRejected)
	require.NoError(t, err)
	require.NotNil(t, rejected.SelectedDate)
	assert.Equal(t, *selected.SelectedDate, *rejected.SelectedDate)
	assert.Equal(t, 0, f.store.DashboardStats().SelectedStudents)
}

func TestTransitionApplication_OfferBlocksRevocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.selectAsha(t)
	offer, _, err := f.store.IssueOffer(ctx, OfferInput{StudentID: f.asha.ID, DriveID: f.drive.ID, FinalCTC: 1, JoiningDate: testNow})
	require.NoError(t, err)

	_, err = f.store.TransitionApplication(ctx, f.ashaApp.ID, models.ApplicationRejected)
	assert.ErrorIs(t, err, apperrors.ErrReferencedEntity)

	require.NoError(t, f.store.DeleteOffer(ctx, offer.ID))
	_, err = f.store.TransitionApplication(ctx, f.ashaApp.ID, models.ApplicationRejected)
	assert.NoError(t, err)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	stats := newTestStore().DashboardStats()
	assert.Equal(t, models.DashboardStats{}, stats)
}

func TestDashboardStats_SelectedCountsStudentsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.selectAsha(t)

	second, err := f.store.CreateDrive(ctx, driveInput(f.acme.ID))
	require.NoError(t, err)
	app, err := f.store.CreateApplication(ctx, f.asha.ID, second.ID)
	require.NoError(t, err)
	_, err = f.store.TransitionApplication(ctx, app.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	_, err = f.store.TransitionApplication(ctx, app.ID, models.ApplicationSelected)
	require.NoError(t, err)

	stats := f.store.DashboardStats()
	assert.Equal(t, 1, stats.SelectedStudents)
	assert.Equal(t, 50, stats.PlacementRate)
	assert.Equal(t, 2, stats.TotalDrives)
}

func TestDashboardStats_RatesRound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	fees := []models.CRTFeeStatus{models.CRTFeePaid, models.CRTFeePending, models.CRTFeePartial}
	for i, fee := range fees {
		in := studentInput(fmt.Sprintf("S%d", i), fmt.Sprintf("R%d", i), 0)
		in.CRTFeeStatus = fee
		_, err := store.CreateStudent(ctx, in)
		require.NoError(t, err)
	}

	stats := store.DashboardStats()
	assert.Equal(t, 1, stats.CRTFeePaid)
	assert.Equal(t, 1, stats.CRTFeePending)
	assert.Equal(t, 33, stats.CRTPaymentRate)

	report := store.CRTFeeStatusReport()
	assert.Equal(t, models.CRTFeeStatusReport{Paid: 1, Pending: 1, Partial: 1}, report)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(3, 0))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 100, percent(4, 4))
}

func TestStudentExportRow(t *testing.T) {
	in := studentInput("Asha", "R001", 0)
	receipt := "RCPT-9"
	in.CRTReceiptNumber = &receipt
	student, err := newTestStore().CreateStudent(context.Background(), in)
	require.NoError(t, err)

	row := StudentExportRow(student)
	require.Len(t, row, len(StudentExportColumns))
	assert.Equal(t, []string{
		"Asha", "R001", "CSE", "A", "R001@college.edu", "9876543210",
		"91.5", "88", "8.5", "0", "not_applicable", "2026", "paid", "5000", "RCPT-9",
	}, row)

	student.CRTReceiptNumber = nil
	assert.Equal(t, "", StudentExportRow(student)[14])
}

func TestStore_ConcurrentApplications(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	company, err := store.CreateCompany(ctx, CompanyInput{Name: "Acme"})
	require.NoError(t, err)
	drive, err := store.CreateDrive(ctx, driveInput(company.ID))
	require.NoError(t, err)
	student, err := store.CreateStudent(ctx, studentInput("Asha", "R001", 0))
	require.NoError(t, err)

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateApplication(ctx, student.ID, drive.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case apperrors.Is(err, apperrors.ErrDuplicateApplication):
				dupes++
			}
			_ = store.DashboardStats()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, dupes)
	assert.Len(t, store.ListApplications(ApplicationFilter{}), 1)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

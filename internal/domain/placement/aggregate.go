package placement

import (
	"math"

	"github.com/yigit/placement/internal/app/models"
)

// percent rounds part/whole*100 to the nearest integer, 0 when whole is 0
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

func (st *state) dashboardStats() models.DashboardStats {
	stats := models.DashboardStats{
		TotalStudents:     st.students.len(),
		TotalCompanies:    st.companies.len(),
		TotalDrives:       st.drives.len(),
		TotalApplications: st.applications.len(),
		TotalOffers:       st.offers.len(),
	}

	st.drives.each(func(d models.Drive) bool {
		if d.Status == models.DriveUpcoming {
			stats.UpcomingDrives++
		}
		return true
	})

	selected := make(map[string]struct{})
	st.applications.each(func(a models.Application) bool {
		if a.Status == models.ApplicationSelected {
			selected[a.StudentID] = struct{}{}
		}
		return true
	})
	stats.SelectedStudents = len(selected)

	st.students.each(func(s models.Student) bool {
		switch s.CRTFeeStatus {
		case models.CRTFeePaid:
			stats.CRTFeePaid++
		case models.CRTFeePending:
			stats.CRTFeePending++
		}
		if s.BacklogsCount > 0 {
			stats.StudentsWithBacklogs++
		}
		return true
	})

	stats.PlacementRate = percent(stats.SelectedStudents, stats.TotalStudents)
	stats.CRTPaymentRate = percent(stats.CRTFeePaid, stats.TotalStudents)
	return stats
}

func (st *state) crtFeeStatusReport() models.CRTFeeStatusReport {
	var report models.CRTFeeStatusReport
	st.students.each(func(s models.Student) bool {
		switch s.CRTFeeStatus {
		case models.CRTFeePaid:
			report.Paid++
		case models.CRTFeePending:
			report.Pending++
		case models.CRTFeePartial:
			report.Partial++
		case models.CRTFeeExempted:
			report.Exempted++
		}
		return true
	})
	return report
}

// DashboardStats computes the dashboard summary over the committed state
func (s *Store) DashboardStats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.dashboardStats()
}

// CRTFeeStatusReport counts students per CRT fee status
func (s *Store) CRTFeeStatusReport() models.CRTFeeStatusReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.crtFeeStatusReport()
}

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/yigit/placement/internal/app/models"
)

func renderDashboard(w io.Writer, stats models.DashboardStats) {
	color.New(color.FgYellow).Fprintln(w, "\nPlacement Dashboard")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	for _, row := range [][2]interface{}{
		{"Total students", stats.TotalStudents},
		{"Total companies", stats.TotalCompanies},
		{"Total drives", stats.TotalDrives},
		{"Upcoming drives", stats.UpcomingDrives},
		{"Total applications", stats.TotalApplications},
		{"Selected students", stats.SelectedStudents},
		{"Placement rate", fmt.Sprintf("%d%%", stats.PlacementRate)},
		{"Offer letters", stats.TotalOffers},
		{"CRT fee paid", stats.CRTFeePaid},
		{"CRT fee pending", stats.CRTFeePending},
		{"CRT payment rate", fmt.Sprintf("%d%%", stats.CRTPaymentRate)},
		{"Students with backlogs", stats.StudentsWithBacklogs},
	} {
		table.Append([]string{fmt.Sprint(row[0]), fmt.Sprint(row[1])})
	}
	table.Render()
}

func renderCRTReport(w io.Writer, report models.CRTFeeStatusReport) {
	color.New(color.FgYellow).Fprintln(w, "\nCRT Fee Status")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Status", "Students"})
	counts := map[models.CRTFeeStatus]int{
		models.CRTFeePaid:     report.Paid,
		models.CRTFeePending:  report.Pending,
		models.CRTFeePartial:  report.Partial,
		models.CRTFeeExempted: report.Exempted,
	}
	for _, status := range models.CRTFeeStatuses {
		table.Append([]string{string(status), fmt.Sprint(counts[status])})
	}
	table.Render()
}

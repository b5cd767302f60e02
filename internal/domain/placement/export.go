package placement

import (
	"strconv"

	"github.com/yigit/placement/internal/app/models"
)

// StudentExportColumns is the fixed column order of the student export
var StudentExportColumns = []string{
	"Name",
	"Roll Number",
	"Branch",
	"Section",
	"Email",
	"Phone",
	"SSC %",
	"Inter/Diploma %",
	"CGPA",
	"Backlogs",
	"Backlog Status",
	"Year of Passing",
	"CRT Fee Status",
	"CRT Fee Amount",
	"CRT Receipt Number",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StudentExportRow returns the export cells of one student in column order
func StudentExportRow(s models.Student) []string {
	receipt := ""
	if s.CRTReceiptNumber != nil {
		receipt = *s.CRTReceiptNumber
	}
	return []string{
		s.Name,
		s.RollNo,
		s.Branch,
		s.Section,
		s.Email,
		s.Phone,
		formatFloat(s.SSCPercentage),
		formatFloat(s.InterDiplomaPercentage),
		formatFloat(s.CGPA),
		strconv.Itoa(s.BacklogsCount),
		string(s.BacklogStatus),
		strconv.Itoa(s.YearOfPassing),
		string(s.CRTFeeStatus),
		formatFloat(s.CRTFeeAmount),
		receipt,
	}
}

// StudentExportRows maps students to export rows, preserving order
func StudentExportRows(students []models.Student) [][]string {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, StudentExportRow(s))
	}
	return rows
}

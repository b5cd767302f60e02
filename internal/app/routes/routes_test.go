package routes

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/controllers"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/pkg/events"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := services.NewServices(placement.NewStore(), events.Nop{}, zerolog.Nop())
	router := gin.New()
	SetupRouter(router, controllers.NewControllers(svc))
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// create posts body and returns the id of the created entity
func (a *apiClient) create(path string, body interface{}) string {
	a.t.Helper()
	w, env := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(a.t, created.ID)
	return created.ID
}

func studentBody(name, rollNo string) map[string]interface{} {
	return map[string]interface{}{
		"name":            name,
		"roll_no":         rollNo,
		"branch":          "CSE",
		"section":         "A",
		"year":            4,
		"ssc_percentage":  92.5,
		"cgpa":            8.7,
		"backlogs_count":  0,
		"backlog_status":  "not_applicable",
		"year_of_passing": 2026,
		"email":           strings.ToLower(rollNo) + "@college.edu",
		"phone":           "9876543210",
		"skills":          []string{"Go", "SQL"},
		"crt_fee_status":  "paid",
		"crt_fee_amount":  5000,
	}
}

func TestPing(t *testing.T) {
	api := newAPI(t)
	w, _ := api.do(http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlacementFlowOverHTTP(t *testing.T) {
	api := newAPI(t)

	studentID := api.create("/api/v1/students", studentBody("Asha", "R001"))
	companyID := api.create("/api/v1/companies", map[string]interface{}{"name": "Acme", "industry": "Software"})
	driveID := api.create("/api/v1/drives", map[string]interface{}{
		"company_id": companyID,
		"role":       "SDE",
		"ctc":        1200000,
		"drive_date": "2026-11-20",
	})
	appID := api.create("/api/v1/applications", map[string]interface{}{"student_id": studentID, "drive_id": driveID})

	w, env := api.do(http.MethodPost, "/api/v1/applications", map[string]interface{}{"student_id": studentID, "drive_id": driveID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RES_002", env.Error.Code)

	offer := map[string]interface{}{
		"student_id":   studentID,
		"drive_id":     driveID,
		"final_ctc":    1250000,
		"joining_date": "2027-07-01",
	}
	w, env = api.do(http.MethodPost, "/api/v1/offer-letters", offer)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "WFL_002", env.Error.Code)

	for _, status := range []string{"shortlisted", "selected"} {
		w, _ = api.do(http.MethodPut, "/api/v1/applications/"+appID+"/status", map[string]string{"application_status": status})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	offerID := api.create("/api/v1/offer-letters", offer)
	w, env = api.do(http.MethodGet, "/api/v1/offer-letters/"+offerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var letter struct {
		CompanyName   string `json:"company_name"`
		LetterContent string `json:"letter_content"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &letter))
	assert.Equal(t, "Acme", letter.CompanyName)

	w, env = api.do(http.MethodPut, "/api/v1/applications/"+appID+"/status", map[string]string{"application_status": "rejected"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RES_004", env.Error.Code)

	w, env = api.do(http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalStudents    int `json:"total_students"`
		SelectedStudents int `json:"selected_students"`
		PlacementRate    int `json:"placement_rate"`
		TotalOffers      int `json:"total_offers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 1, stats.SelectedStudents)
	assert.Equal(t, 100, stats.PlacementRate)
	assert.Equal(t, 1, stats.TotalOffers)
}

func TestDriveStatusOverHTTP(t *testing.T) {
	api := newAPI(t)
	companyID := api.create("/api/v1/companies", map[string]interface{}{"name": "Initech"})
	driveID := api.create("/api/v1/drives", map[string]interface{}{
		"company_id": companyID,
		"role":       "QA",
		"drive_date": "2026-12-01T10:00:00Z",
	})

	w, env := api.do(http.MethodPut, "/api/v1/drives/"+driveID+"/status", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "WFL_001", env.Error.Code)

	w, env = api.do(http.MethodPut, "/api/v1/drives/"+driveID+"/status", map[string]string{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)

	w, _ = api.do(http.MethodPut, "/api/v1/drives/"+driveID+"/status", map[string]string{"status": "ongoing"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = api.do(http.MethodGet, "/api/v1/drives?status=ongoing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, driveID, page.Items[0].ID)

	w, env = api.do(http.MethodDelete, "/api/v1/companies/"+companyID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RES_004", env.Error.Code)
}

func TestStudentValidationOverHTTP(t *testing.T) {
	api := newAPI(t)

	body := studentBody("Asha", "R001")
	body["cgpa"] = 11.0
	w, env := api.do(http.MethodPost, "/api/v1/students", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_002", env.Error.Code)
	assert.Equal(t, "cgpa", env.Error.Field)

	body = studentBody("Asha", "R001")
	delete(body, "email")
	w, env = api.do(http.MethodPost, "/api/v1/students", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)

	api.create("/api/v1/students", studentBody("Asha", "R001"))
	w, env = api.do(http.MethodPost, "/api/v1/students", studentBody("Asha Again", "R001"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RES_002", env.Error.Code)

	w, env = api.do(http.MethodGet, "/api/v1/students/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestStudentListPaginationAndExport(t *testing.T) {
	api := newAPI(t)
	for _, roll := range []string{"R001", "R002", "R003"} {
		api.create("/api/v1/students", studentBody("Student "+roll, roll))
	}

	w, env := api.do(http.MethodGet, "/api/v1/students?page=2&size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []struct {
			RollNo string `json:"roll_no"`
		} `json:"items"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalItems  int64 `json:"totalItems"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "R003", page.Items[0].RollNo)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.EqualValues(t, 3, page.Pagination.TotalItems)

	w, _ = api.do(http.MethodGet, "/api/v1/students?year=four", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = api.do(http.MethodGet, "/api/v1/students/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "students.csv")
	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Roll Number", rows[0][1])
	assert.Equal(t, "R001", rows[1][1])
}

func TestCRTFeeReportOverHTTP(t *testing.T) {
	api := newAPI(t)
	api.create("/api/v1/students", studentBody("Asha", "R001"))

	w, env := api.do(http.MethodGet, "/api/v1/reports/crt-fee-status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"paid":1,"pending":0,"partial":0,"exempted":0}`, string(env.Data))
}

package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles student registration
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Invalid or out of range data"
// @Failure 409 {object} dto.APIResponse "Roll number already registered"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	req := middleware.Body[dto.StudentRequest](ctx)
	student, err := c.studentService.Create(ctx, req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, student)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, student)
}

// UpdateStudent replaces the editable fields of a student
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	req := middleware.Body[dto.StudentRequest](ctx)
	student, err := c.studentService.Update(ctx, ctx.Param("id"), req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, student)
}

// DeleteStudent removes a student without applications or offers
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}

// GetAllStudents lists students in registration order
// @Summary List students
// @Tags students
// @Produce json
// @Param branch query string false "Filter by branch"
// @Param year query int false "Filter by year of study"
// @Param crtFeeStatus query string false "Filter by CRT fee status"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	filter, err := studentFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondPage(ctx, c.studentService.List(ctx, filter))
}

// ExportStudents streams the filtered students as a CSV attachment
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	filter, err := studentFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := c.studentService.Export(ctx, &buf, filter); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="students.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func studentFilter(ctx *gin.Context) (placement.StudentFilter, error) {
	filter := placement.StudentFilter{
		Branch:       ctx.Query("branch"),
		CRTFeeStatus: models.CRTFeeStatus(ctx.Query("crtFeeStatus")),
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return filter, apperrors.NewValidationError("year", "year must be a number")
		}
		filter.Year = year
	}
	return filter, nil
}

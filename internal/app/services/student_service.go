package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
)

// StudentService handles student registration and export
type StudentService interface {
	Create(ctx context.Context, in placement.StudentInput) (models.Student, error)
	Get(ctx context.Context, id string) (models.Student, error)
	Update(ctx context.Context, id string, in placement.StudentInput) (models.Student, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter placement.StudentFilter) []models.Student
	Export(ctx context.Context, w io.Writer, filter placement.StudentFilter) error
}

type studentService struct {
	store *placement.Store
	log   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(store *placement.Store, log zerolog.Logger) StudentService {
	return &studentService{store: store, log: log.With().Str("service", "students").Logger()}
}

func (s *studentService) Create(ctx context.Context, in placement.StudentInput) (models.Student, error) {
	student, err := s.store.CreateStudent(ctx, in)
	if err != nil {
		return models.Student{}, err
	}
	s.log.Info().Str("student_id", student.ID).Str("roll_no", student.RollNo).Msg("Student registered")
	return student, nil
}

func (s *studentService) Get(_ context.Context, id string) (models.Student, error) {
	return s.store.GetStudent(id)
}

func (s *studentService) Update(ctx context.Context, id string, in placement.StudentInput) (models.Student, error) {
	student, err := s.store.UpdateStudent(ctx, id, in)
	if err != nil {
		return models.Student{}, err
	}
	s.log.Info().Str("student_id", id).Msg("Student updated")
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("student_id", id).Msg("Student deleted")
	return nil
}

func (s *studentService) List(_ context.Context, filter placement.StudentFilter) []models.Student {
	return s.store.ListStudents(filter)
}

// Export writes the matching students as CSV with a header row
func (s *studentService) Export(ctx context.Context, w io.Writer, filter placement.StudentFilter) error {
	return WriteStudentsCSV(w, s.List(ctx, filter))
}

// WriteStudentsCSV writes the export columns followed by one row per student
func WriteStudentsCSV(w io.Writer, students []models.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(placement.StudentExportColumns); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	if err := cw.WriteAll(placement.StudentExportRows(students)); err != nil {
		return fmt.Errorf("write export rows: %w", err)
	}
	return nil
}

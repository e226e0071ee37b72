package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
	"github.com/noah-isme/campus-portal-api/pkg/export"
)

// Supported transcript formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

var transcriptHeaders = []string{"Semester", "Code", "Course", "Credits", "Final", "Letter"}

type recordSummarizer interface {
	Summary(ctx context.Context, student models.StudentAccount) (*dto.RecordSummary, bool, error)
}

type tableRenderer interface {
	ContentType() string
	Extension() string
	Render(data export.Table, heading export.Heading) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the student's academic record as a transcript file.
type ExportService struct {
	records   recordSummarizer
	renderers map[string]tableRenderer
	logger    *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers fall back to the
// package defaults.
func NewExportService(records recordSummarizer, logger *zap.Logger, csv, pdf tableRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		records:   records,
		renderers: map[string]tableRenderer{FormatCSV: csv, FormatPDF: pdf},
		logger:    logger,
	}
}

// Transcript renders the student's record in the requested format.
func (s *ExportService) Transcript(ctx context.Context, student models.StudentAccount, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}

	summary, _, err := s.records.Summary(ctx, student)
	if err != nil {
		return nil, err
	}
	if !summary.Available {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "academic record is not available yet")
	}

	table := export.Table{Headers: transcriptHeaders}
	for _, sem := range summary.Semesters {
		for _, c := range sem.Courses {
			table.Rows = append(table.Rows, map[string]string{
				"Semester": sem.Semester,
				"Code":     c.Code,
				"Course":   c.Name,
				"Credits":  strconv.Itoa(c.Credits),
				"Final":    strconv.FormatFloat(c.FinalGrade, 'f', 1, 64),
				"Letter":   c.LetterGrade,
			})
		}
	}
	heading := export.Heading{
		Title: "Academic Record - " + student.Student.Name,
		Lines: []string{
			fmt.Sprintf("GPA: %.2f", summary.GPA),
			fmt.Sprintf("Total Credits: %d", summary.TotalCredits),
			fmt.Sprintf("Courses Completed: %d", summary.CoursesCompleted),
		},
	}

	data, err := renderer.Render(table, heading)
	if err != nil {
		s.logger.Error("transcript render failed", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("transcript-%s.%s", student.Student.ID, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

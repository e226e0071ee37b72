package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
	"github.com/noah-isme/campus-portal-api/pkg/export"
)

type failingRenderer struct{}

func (failingRenderer) ContentType() string { return "text/csv" }
func (failingRenderer) Extension() string   { return "csv" }
func (failingRenderer) Render(export.Table, export.Heading) ([]byte, error) {
	return nil, errors.New("disk full")
}

func TestExportTranscriptCSV(t *testing.T) {
	records := NewRecordService(seedStore(), nil, time.Minute, nil)
	svc := NewExportService(records, nil, nil, nil)

	file, err := svc.Transcript(context.Background(), studentAccount(t, "s1"), "")
	require.NoError(t, err)
	assert.Equal(t, "transcript-s1.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t,
		"Semester,Code,Course,Credits,Final,Letter\n"+
			"Fall 2023,CS101,Introduction to Computer Science,3,89.5,A-\n"+
			"Fall 2023,MATH201,Calculus I,4,81.4,B\n",
		string(file.Data))
}

func TestExportTranscriptPDF(t *testing.T) {
	records := NewRecordService(seedStore(), nil, time.Minute, nil)
	svc := NewExportService(records, nil, nil, nil)

	file, err := svc.Transcript(context.Background(), studentAccount(t, "s2"), "PDF")
	require.NoError(t, err)
	assert.Equal(t, "transcript-s2.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF-")))
}

func TestExportTranscriptErrors(t *testing.T) {
	records := NewRecordService(seedStore(), nil, time.Minute, nil)
	svc := NewExportService(records, nil, failingRenderer{}, nil)

	_, err := svc.Transcript(context.Background(), studentAccount(t, "s1"), "xlsx")
	requireAppError(t, err, appErrors.ErrValidation)

	_, err = svc.Transcript(context.Background(), studentAccount(t, "s1"), "csv")
	requireAppError(t, err, appErrors.ErrInternal)

	_, err = svc.Transcript(context.Background(), models.StudentAccount{Student: models.User{ID: "s-new", Role: models.RoleStudent}}, "pdf")
	requireAppError(t, err, appErrors.ErrNotFound)
}

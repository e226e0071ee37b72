package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
)

type recordStore interface {
	CourseByID(id string) (models.Course, bool)
	AcademicRecordForStudent(studentID string) (models.AcademicRecord, bool)
}

// RecordService builds the student's academic record summary.
type RecordService struct {
	store    recordStore
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewRecordService constructs a RecordService. cache may be nil.
func NewRecordService(store recordStore, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{store: store, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Summary returns the student's record and whether it was served from cache.
// A student without a record gets Available=false rather than an error.
func (s *RecordService) Summary(ctx context.Context, student models.StudentAccount) (*dto.RecordSummary, bool, error) {
	key := fmt.Sprintf("record:%s", student.Student.ID)
	var cached dto.RecordSummary
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, true, nil
	}

	summary := s.compose(student.Student.ID)
	if err := s.cache.Set(ctx, key, summary, s.cacheTTL); err != nil {
		s.logger.Warn("record cache write failed", zap.String("key", key), zap.Error(err))
	}
	return summary, false, nil
}

func (s *RecordService) compose(studentID string) *dto.RecordSummary {
	out := &dto.RecordSummary{
		Semesters:    make([]dto.SemesterRecord, 0),
		Distribution: make([]dto.GradeBandCount, 0, len(models.LetterBands)),
	}
	record, ok := s.store.AcademicRecordForStudent(studentID)
	if !ok {
		return out
	}

	out.Available = true
	out.StudentID = record.StudentID
	out.GPA = record.GPA
	out.TotalCredits = record.TotalCredits
	out.CoursesCompleted = len(record.Courses)

	index := make(map[string]int)
	bands := make(map[string]int)
	for _, rc := range record.Courses {
		line := dto.RecordCourse{
			CourseID:    rc.CourseID,
			Semester:    rc.Semester,
			FinalGrade:  rc.FinalGrade,
			LetterGrade: rc.LetterGrade,
		}
		if c, ok := s.store.CourseByID(rc.CourseID); ok {
			line.Code = c.Code
			line.Name = c.Name
			line.Credits = c.Credits
		}

		i, ok := index[rc.Semester]
		if !ok {
			i = len(out.Semesters)
			index[rc.Semester] = i
			out.Semesters = append(out.Semesters, dto.SemesterRecord{Semester: rc.Semester})
		}
		out.Semesters[i].Courses = append(out.Semesters[i].Courses, line)

		if band := models.LetterBand(rc.LetterGrade); band != "" {
			bands[band]++
		}
	}
	for _, band := range models.LetterBands {
		out.Distribution = append(out.Distribution, dto.GradeBandCount{Band: band, Count: bands[band]})
	}
	return out
}

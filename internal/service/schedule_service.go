package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
)

type scheduleStore interface {
	CoursesForTeacher(teacherID string) []models.Course
	ScheduleForCourse(courseID string) []models.Schedule
}

// ScheduleService builds the teacher's weekly teaching view.
type ScheduleService struct {
	store    scheduleStore
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewScheduleService constructs a ScheduleService. cache may be nil.
func NewScheduleService(store scheduleStore, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{store: store, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Week returns Monday to Friday, each day holding the teacher's meetings
// ordered by start time. Weekend meetings are not shown.
func (s *ScheduleService) Week(ctx context.Context, teacher models.TeacherAccount) (*dto.TeachingWeek, bool, error) {
	key := fmt.Sprintf("schedule:teacher:%s", teacher.Teacher.ID)
	var cached dto.TeachingWeek
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, true, nil
	}

	week := s.compose(teacher.Teacher.ID)
	if err := s.cache.Set(ctx, key, week, s.cacheTTL); err != nil {
		s.logger.Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
	}
	return week, false, nil
}

func (s *ScheduleService) compose(teacherID string) *dto.TeachingWeek {
	byDay := make(map[string][]dto.TeachingSession, len(models.TeachingDays))
	for _, c := range s.store.CoursesForTeacher(teacherID) {
		for _, sch := range s.store.ScheduleForCourse(c.ID) {
			byDay[sch.Day] = append(byDay[sch.Day], dto.TeachingSession{Schedule: sch, CourseCode: c.Code, CourseName: c.Name})
		}
	}

	week := &dto.TeachingWeek{TeacherID: teacherID, Days: make([]dto.TeachingDay, 0, len(models.TeachingDays))}
	for _, day := range models.TeachingDays {
		sessions := byDay[day]
		if sessions == nil {
			sessions = make([]dto.TeachingSession, 0)
		}
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].StartTime < sessions[j].StartTime
		})
		week.Days = append(week.Days, dto.TeachingDay{Day: day, Sessions: sessions})
	}
	return week
}

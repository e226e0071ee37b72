package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

func sessionIDs(day dto.TeachingDay) []string {
	ids := make([]string, len(day.Sessions))
	for i, s := range day.Sessions {
		ids[i] = s.ID
	}
	return ids
}

func TestScheduleWeek(t *testing.T) {
	svc := NewScheduleService(seedStore(), nil, time.Minute, nil)

	week, hit, err := svc.Week(context.Background(), teacherAccount(t, "t1"))
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, week.Days, 5)

	days := make([]string, len(week.Days))
	for i, d := range week.Days {
		days[i] = d.Day
	}
	assert.Equal(t, models.TeachingDays, days)

	assert.Equal(t, []string{"sch1", "sch5"}, sessionIDs(week.Days[0]))
	assert.Empty(t, week.Days[1].Sessions)
	assert.Equal(t, []string{"sch2", "sch7"}, sessionIDs(week.Days[2]))
	assert.Equal(t, "CS101", week.Days[0].Sessions[0].CourseCode)
	assert.Equal(t, "Composition", week.Days[0].Sessions[1].CourseName)
}

func TestScheduleWeekSortsByStartTimeAndHidesWeekends(t *testing.T) {
	data := repository.SeedDataset()
	data.Schedules = []models.Schedule{
		{ID: "late", CourseID: "c1", Day: "Friday", StartTime: "16:00"},
		{ID: "early", CourseID: "c3", Day: "Friday", StartTime: "08:30"},
		{ID: "weekend", CourseID: "c5", Day: "Saturday", StartTime: "10:00"},
	}
	svc := NewScheduleService(repository.NewAcademicRepository(data), nil, time.Minute, nil)

	week, _, err := svc.Week(context.Background(), teacherAccount(t, "t1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late"}, sessionIDs(week.Days[4]))
	total := 0
	for _, d := range week.Days {
		total += len(d.Sessions)
	}
	assert.Equal(t, 2, total)
}

func TestScheduleWeekCached(t *testing.T) {
	cache := NewCacheService(newMemoryCache(), nil, time.Minute, nil, true)
	svc := NewScheduleService(seedStore(), cache, time.Minute, nil)
	teacher := teacherAccount(t, "t2")

	_, hit, err := svc.Week(context.Background(), teacher)
	require.NoError(t, err)
	assert.False(t, hit)

	week, hit, err := svc.Week(context.Background(), teacher)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"sch3", "sch6"}, sessionIDs(week.Days[1]))
}

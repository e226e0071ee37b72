package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// Snapshot tables are read in their position order, which is the store order
// the derivation queries preserve.
const (
	selectUsersQuery           = `SELECT id, name, email, role, profile_image FROM users ORDER BY position`
	selectCoursesQuery         = `SELECT id, code, name, description, credits, teacher_id, semester, max_students, enrolled_students FROM courses ORDER BY position`
	selectSchedulesQuery       = `SELECT id, course_id, day, start_time, end_time, room FROM schedules ORDER BY position`
	selectEnrollmentsQuery     = `SELECT id, student_id, course_id, enrollment_date, status FROM enrollments ORDER BY position`
	selectGradesQuery          = `SELECT id, student_id, course_id, midterm, final, assignments, attendance, final_grade, letter_grade FROM grades ORDER BY position`
	selectAcademicRecordsQuery = `SELECT student_id, total_credits, gpa FROM academic_records ORDER BY position`
	selectRecordCoursesQuery   = `SELECT student_id, course_id, semester, final_grade, letter_grade FROM academic_record_courses ORDER BY position`
)

// SnapshotRepository loads the academic dataset from PostgreSQL. It is read
// once at startup; the portal never writes back.
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a SnapshotRepository.
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

type recordCourseRow struct {
	StudentID string `db:"student_id"`
	models.RecordCourse
}

// Load reads every snapshot table into a Dataset.
func (r *SnapshotRepository) Load(ctx context.Context) (Dataset, error) {
	var data Dataset
	if err := r.db.SelectContext(ctx, &data.Users, selectUsersQuery); err != nil {
		return Dataset{}, fmt.Errorf("load users: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.Courses, selectCoursesQuery); err != nil {
		return Dataset{}, fmt.Errorf("load courses: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.Schedules, selectSchedulesQuery); err != nil {
		return Dataset{}, fmt.Errorf("load schedules: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.Enrollments, selectEnrollmentsQuery); err != nil {
		return Dataset{}, fmt.Errorf("load enrollments: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.Grades, selectGradesQuery); err != nil {
		return Dataset{}, fmt.Errorf("load grades: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.AcademicRecords, selectAcademicRecordsQuery); err != nil {
		return Dataset{}, fmt.Errorf("load academic records: %w", err)
	}

	var rows []recordCourseRow
	if err := r.db.SelectContext(ctx, &rows, selectRecordCoursesQuery); err != nil {
		return Dataset{}, fmt.Errorf("load academic record courses: %w", err)
	}
	index := make(map[string]int, len(data.AcademicRecords))
	for i := range data.AcademicRecords {
		data.AcademicRecords[i].Courses = []models.RecordCourse{}
		index[data.AcademicRecords[i].StudentID] = i
	}
	for _, row := range rows {
		i, ok := index[row.StudentID]
		if !ok {
			continue
		}
		data.AcademicRecords[i].Courses = append(data.AcademicRecords[i].Courses, row.RecordCourse)
	}

	return data, nil
}

package repository

import "github.com/noah-isme/campus-portal-api/internal/models"

// SeedDataset returns the compiled-in academic snapshot served when no
// database source is configured.
func SeedDataset() Dataset {
	return Dataset{
		Users: []models.User{
			{ID: "t1", Name: "Dr. Sarah Johnson", Email: "sjohnson@college.edu", Role: models.RoleTeacher, ProfileImage: str("https://i.pravatar.cc/150?img=1")},
			{ID: "t2", Name: "Prof. Michael Chen", Email: "mchen@college.edu", Role: models.RoleTeacher, ProfileImage: str("https://i.pravatar.cc/150?img=2")},
			{ID: "s1", Name: "Emma Wilson", Email: "ewilson@college.edu", Role: models.RoleStudent, ProfileImage: str("https://i.pravatar.cc/150?img=3")},
			{ID: "s2", Name: "James Taylor", Email: "jtaylor@college.edu", Role: models.RoleStudent, ProfileImage: str("https://i.pravatar.cc/150?img=4")},
			{ID: "s3", Name: "Olivia Martinez", Email: "omartinez@college.edu", Role: models.RoleStudent, ProfileImage: str("https://i.pravatar.cc/150?img=5")},
		},
		Courses: []models.Course{
			{ID: "c1", Code: "CS101", Name: "Introduction to Computer Science", Description: "Fundamental concepts of programming and computer science.", Credits: 3, TeacherID: "t1", Semester: "Fall 2023", MaxStudents: 30, EnrolledStudents: 28},
			{ID: "c2", Code: "MATH201", Name: "Calculus I", Description: "Introduction to differential and integral calculus.", Credits: 4, TeacherID: "t2", Semester: "Fall 2023", MaxStudents: 25, EnrolledStudents: 22},
			{ID: "c3", Code: "ENG105", Name: "Composition", Description: "Principles of academic writing and rhetorical concepts.", Credits: 3, TeacherID: "t1", Semester: "Fall 2023", MaxStudents: 20, EnrolledStudents: 18},
			{ID: "c4", Code: "BIO110", Name: "Introduction to Biology", Description: "Basic principles of biology including cell structure and function.", Credits: 4, TeacherID: "t2", Semester: "Spring 2024", MaxStudents: 30, EnrolledStudents: 15},
			{ID: "c5", Code: "CS201", Name: "Data Structures", Description: "Advanced programming concepts and data structures.", Credits: 3, TeacherID: "t1", Semester: "Spring 2024", MaxStudents: 25, EnrolledStudents: 10},
		},
		Schedules: []models.Schedule{
			{ID: "sch1", CourseID: "c1", Day: "Monday", StartTime: "09:00", EndTime: "10:30", Room: "Tech 101"},
			{ID: "sch2", CourseID: "c1", Day: "Wednesday", StartTime: "09:00", EndTime: "10:30", Room: "Tech 101"},
			{ID: "sch3", CourseID: "c2", Day: "Tuesday", StartTime: "11:00", EndTime: "12:30", Room: "Math 202"},
			{ID: "sch4", CourseID: "c2", Day: "Thursday", StartTime: "11:00", EndTime: "12:30", Room: "Math 202"},
			{ID: "sch5", CourseID: "c3", Day: "Monday", StartTime: "14:00", EndTime: "15:30", Room: "Arts 105"},
			{ID: "sch6", CourseID: "c4", Day: "Tuesday", StartTime: "13:00", EndTime: "14:30", Room: "Science 302"},
			{ID: "sch7", CourseID: "c5", Day: "Wednesday", StartTime: "15:00", EndTime: "16:30", Room: "Tech 205"},
		},
		Enrollments: []models.Enrollment{
			{ID: "e1", StudentID: "s1", CourseID: "c1", EnrollmentDate: "2023-08-25", Status: models.EnrollmentStatusActive},
			{ID: "e2", StudentID: "s1", CourseID: "c2", EnrollmentDate: "2023-08-25", Status: models.EnrollmentStatusActive},
			{ID: "e3", StudentID: "s2", CourseID: "c1", EnrollmentDate: "2023-08-26", Status: models.EnrollmentStatusActive},
			{ID: "e4", StudentID: "s3", CourseID: "c2", EnrollmentDate: "2023-08-26", Status: models.EnrollmentStatusActive},
			{ID: "e5", StudentID: "s3", CourseID: "c3", EnrollmentDate: "2023-08-26", Status: models.EnrollmentStatusDropped},
			{ID: "e6", StudentID: "s2", CourseID: "c3", EnrollmentDate: "2023-08-27", Status: models.EnrollmentStatusActive},
		},
		Grades: []models.Grade{
			{ID: "g1", StudentID: "s1", CourseID: "c1", Midterm: num(85), Final: num(90), Assignments: num(88), Attendance: num(95), FinalGrade: num(89.5), LetterGrade: str("A-")},
			{ID: "g2", StudentID: "s1", CourseID: "c2", Midterm: num(78), Final: num(82), Assignments: num(80), Attendance: num(90), FinalGrade: num(81.4), LetterGrade: str("B")},
			{ID: "g3", StudentID: "s2", CourseID: "c1", Midterm: num(92), Final: num(94), Assignments: num(90), Attendance: num(100), FinalGrade: num(93.4), LetterGrade: str("A")},
			{ID: "g4", StudentID: "s3", CourseID: "c2", Midterm: num(65), Final: num(72), Assignments: num(70), Attendance: num(85), FinalGrade: num(71.5), LetterGrade: str("C")},
			{ID: "g5", StudentID: "s2", CourseID: "c3", Midterm: num(88), Assignments: num(85), Attendance: num(90)},
		},
		AcademicRecords: []models.AcademicRecord{
			{StudentID: "s1", TotalCredits: 7, GPA: 3.6, Courses: []models.RecordCourse{
				{CourseID: "c1", Semester: "Fall 2023", FinalGrade: 89.5, LetterGrade: "A-"},
				{CourseID: "c2", Semester: "Fall 2023", FinalGrade: 81.4, LetterGrade: "B"},
			}},
			{StudentID: "s2", TotalCredits: 6, GPA: 3.85, Courses: []models.RecordCourse{
				{CourseID: "c1", Semester: "Fall 2023", FinalGrade: 93.4, LetterGrade: "A"},
				{CourseID: "c3", Semester: "Fall 2023", FinalGrade: 86.5, LetterGrade: "B+"},
			}},
			{StudentID: "s3", TotalCredits: 4, GPA: 2.3, Courses: []models.RecordCourse{
				{CourseID: "c2", Semester: "Fall 2023", FinalGrade: 71.5, LetterGrade: "C"},
			}},
		},
	}
}

func num(v float64) *float64 { return &v }

func str(v string) *string { return &v }

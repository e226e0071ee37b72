package models

// Schedule is a recurring weekly meeting of a course. Times are HH:MM (24h).
type Schedule struct {
	ID        string `db:"id" json:"id"`
	CourseID  string `db:"course_id" json:"course_id"`
	Day       string `db:"day" json:"day"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
	Room      string `db:"room" json:"room"`
}

// TeachingDays lists the days shown on the weekly teaching view, in order.
var TeachingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

package models

import "time"

// AckKind names the simulated write being acknowledged.
type AckKind string

const (
	AckEnroll       AckKind = "enroll"
	AckDrop         AckKind = "drop"
	AckSaveGrades   AckKind = "save_grades"
	AckCreateCourse AckKind = "create_course"
	AckUpdateCourse AckKind = "update_course"
	AckDeleteCourse AckKind = "delete_course"
)

// AckStatus tracks a simulated write.
type AckStatus string

const (
	AckStatusPending      AckStatus = "pending"
	AckStatusAcknowledged AckStatus = "acknowledged"
)

// AckRequest describes a simulated write awaiting acknowledgement. Nothing is
// written back to the academic data.
type AckRequest struct {
	Kind      AckKind
	ActorID   string
	SubjectID string
	Title     string
	Message   string
}

// Ack is the delayed acknowledgement of a simulated write.
type Ack struct {
	ID             string     `json:"id"`
	Kind           AckKind    `json:"kind"`
	ActorID        string     `json:"-"`
	SubjectID      string     `json:"subject_id"`
	Status         AckStatus  `json:"status"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

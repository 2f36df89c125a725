package models

import "time"

// EnrollmentStatus represents the state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// Enrollment links a user to a course, granting access to its lessons
type Enrollment struct {
	ID        int              `json:"id"`
	UserID    int              `json:"userId"`
	CourseID  int              `json:"courseId"`
	Status    EnrollmentStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

// EnrollmentSummary represents an enrollment with course progress for "my courses" listings
type EnrollmentSummary struct {
	CourseSlug       string           `json:"courseSlug"`
	CourseTitle      string           `json:"courseTitle"`
	Status           EnrollmentStatus `json:"status"`
	TotalLessons     int              `json:"totalLessons"`
	CompletedLessons int              `json:"completedLessons"`
	EnrolledAt       time.Time        `json:"enrolledAt"`
}

package models

import "time"

// CourseQuestion represents a student question on a course, optionally
// answered later by the owning teacher.
type CourseQuestion struct {
	ID         int64      `json:"id" db:"id"`
	CourseID   int64      `json:"course_id" db:"course_id"`
	StudentID  int64      `json:"student_id" db:"student_id"`
	Question   string     `json:"question" db:"question"`
	Answer     string     `json:"answer" db:"answer"`
	AnsweredAt *time.Time `json:"answered_at,omitempty" db:"answered_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`

	StudentName string `json:"student_name,omitempty"`
}

// CourseComment represents a student comment on a course
type CourseComment struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	StudentName string `json:"student_name,omitempty"`
}

// CourseRating represents a student's rating of a course. The table carries
// UNIQUE(course_id, student_id) so a second submission updates in place.
type CourseRating struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	Rating    int       `json:"rating" db:"rating"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

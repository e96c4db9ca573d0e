package models

import "time"

// Course represents a course row in the 'courses' table
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	CourseTag    string    `json:"course_tag" db:"course_tag"`
	Description  string    `json:"description" db:"description"`
	Image        string    `json:"image" db:"image"` // stored filename, served from /image/
	CategoryID   int64     `json:"category_id" db:"category_id"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	TeacherID    int64     `json:"teacher_id" db:"teacher_id"`
	Benefit1     string    `json:"benefit1" db:"benefit1"`
	Benefit2     string    `json:"benefit2" db:"benefit2"`
	Prereq1      string    `json:"prerequisite1" db:"prerequisite1"`
	Prereq2      string    `json:"prerequisite2" db:"prerequisite2"`
	Year         string    `json:"year" db:"year"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Relations, populated on detail reads
	Links      []*CourseLink `json:"links,omitempty"`
	Department *Department   `json:"department,omitempty"`
	Category   *Category     `json:"category,omitempty"`
}

// CourseLink represents one named external link owned by a course
type CourseLink struct {
	ID       int64  `json:"id" db:"id"`
	CourseID int64  `json:"course_id" db:"course_id"`
	LinkName string `json:"link_name" db:"link_name"`
	Link     string `json:"link" db:"link"`
}

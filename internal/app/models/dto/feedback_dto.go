package dto

import "time"

// RateCourseRequest is the body of POST /student/rate-course
type RateCourseRequest struct {
	CourseID int64 `json:"course_id" binding:"required,min=1"`
	Rating   int   `json:"rating" binding:"required,min=1,max=5"`
}

// RatingResponse reports a course's aggregate rating plus the caller's own
type RatingResponse struct {
	CourseID      int64   `json:"course_id"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
	OwnRating     int     `json:"own_rating,omitempty"`
}

// AddCommentRequest is the body of POST /student/add-comment
type AddCommentRequest struct {
	CourseID int64  `json:"course_id" binding:"required,min=1"`
	Comment  string `json:"comment" binding:"required"`
}

// CommentResponse is one comment with the commenting student's name
type CommentResponse struct {
	ID          int64     `json:"id"`
	CourseID    int64     `json:"course_id"`
	StudentID   int64     `json:"student_id"`
	StudentName string    `json:"student_name"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

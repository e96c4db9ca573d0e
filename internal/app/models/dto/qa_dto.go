package dto

import "time"

// AskQuestionRequest is the body of POST /student/ask-question
type AskQuestionRequest struct {
	CourseID int64  `json:"course_id" binding:"required,min=1"`
	Question string `json:"question" binding:"required"`
}

// AnswerQuestionRequest is the body of POST /teacher/answer-quation
type AnswerQuestionRequest struct {
	QuestionID int64  `json:"question_id" binding:"required,min=1"`
	Answer     string `json:"answer" binding:"required"`
}

// QAResponse is one question with its (possibly empty) answer
type QAResponse struct {
	ID          int64      `json:"id"`
	CourseID    int64      `json:"course_id"`
	StudentID   int64      `json:"student_id"`
	StudentName string     `json:"student_name"`
	Question    string     `json:"question"`
	Answer      string     `json:"answer"`
	AnsweredAt  *time.Time `json:"answered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

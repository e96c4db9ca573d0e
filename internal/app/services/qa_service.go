package services

import (
	"context"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/repositories"
	"github.com/exambank/backend/internal/pkg/apperrors"
)

// QAService defines question and answer operations on courses
type QAService interface {
	AskQuestion(ctx context.Context, studentID int64, req *dto.AskQuestionRequest) (*dto.QAResponse, error)
	AnswerQuestion(ctx context.Context, teacherID int64, req *dto.AnswerQuestionRequest) error
	GetCourseQA(ctx context.Context, courseID int64) ([]dto.QAResponse, error)
}

type qaServiceImpl struct {
	qaRepo     *repositories.QARepository
	courseRepo *repositories.CourseRepository
}

// NewQAService creates a new QAService
func NewQAService(qaRepo *repositories.QARepository, courseRepo *repositories.CourseRepository) QAService {
	return &qaServiceImpl{qaRepo: qaRepo, courseRepo: courseRepo}
}

// AskQuestion records a student question on an existing course
func (s *qaServiceImpl) AskQuestion(ctx context.Context, studentID int64, req *dto.AskQuestionRequest) (*dto.QAResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	question := &models.CourseQuestion{
		CourseID:  req.CourseID,
		StudentID: studentID,
		Question:  req.Question,
	}

	if err := s.qaRepo.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}

	return &dto.QAResponse{
		ID:        question.ID,
		CourseID:  question.CourseID,
		StudentID: question.StudentID,
		Question:  question.Question,
		CreatedAt: question.CreatedAt,
	}, nil
}

// AnswerQuestion records the answer on a question belonging to one of the
// teacher's own courses.
func (s *qaServiceImpl) AnswerQuestion(ctx context.Context, teacherID int64, req *dto.AnswerQuestionRequest) error {
	question, err := s.qaRepo.GetByID(ctx, req.QuestionID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, question.CourseID)
	if err != nil {
		return err
	}
	if course.TeacherID != teacherID {
		return apperrors.ErrPermissionDenied
	}

	return s.qaRepo.Answer(ctx, req.QuestionID, req.Answer)
}

// GetCourseQA lists a course's questions with answers and student names
func (s *qaServiceImpl) GetCourseQA(ctx context.Context, courseID int64) ([]dto.QAResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	questions, err := s.qaRepo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QAResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, dto.QAResponse{
			ID:          q.ID,
			CourseID:    q.CourseID,
			StudentID:   q.StudentID,
			StudentName: q.StudentName,
			Question:    q.Question,
			Answer:      q.Answer,
			AnsweredAt:  q.AnsweredAt,
			CreatedAt:   q.CreatedAt,
		})
	}

	return responses, nil
}

package services

import (
	"context"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/repositories"
)

// FeedbackService defines rating and comment operations on courses
type FeedbackService interface {
	RateCourse(ctx context.Context, studentID int64, req *dto.RateCourseRequest) (*dto.RatingResponse, error)
	GetRating(ctx context.Context, courseID, studentID int64) (*dto.RatingResponse, error)
	AddComment(ctx context.Context, studentID int64, req *dto.AddCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, courseID int64) ([]dto.CommentResponse, error)
}

type feedbackServiceImpl struct {
	feedbackRepo *repositories.FeedbackRepository
	courseRepo   *repositories.CourseRepository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo *repositories.FeedbackRepository, courseRepo *repositories.CourseRepository) FeedbackService {
	return &feedbackServiceImpl{feedbackRepo: feedbackRepo, courseRepo: courseRepo}
}

// RateCourse stores the student's rating. Rating the same course again
// replaces the previous value instead of inserting a second row.
func (s *feedbackServiceImpl) RateCourse(ctx context.Context, studentID int64, req *dto.RateCourseRequest) (*dto.RatingResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	rating := &models.CourseRating{
		CourseID:  req.CourseID,
		StudentID: studentID,
		Rating:    req.Rating,
	}

	if err := s.feedbackRepo.UpsertRating(ctx, rating); err != nil {
		return nil, err
	}

	return s.GetRating(ctx, req.CourseID, studentID)
}

// GetRating returns the aggregate rating for a course plus the caller's own
func (s *feedbackServiceImpl) GetRating(ctx context.Context, courseID, studentID int64) (*dto.RatingResponse, error) {
	avg, count, own, err := s.feedbackRepo.GetRatingSummary(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.RatingResponse{
		CourseID:      courseID,
		AverageRating: avg,
		RatingCount:   count,
		OwnRating:     own,
	}, nil
}

// AddComment records a student comment on an existing course
func (s *feedbackServiceImpl) AddComment(ctx context.Context, studentID int64, req *dto.AddCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	comment := &models.CourseComment{
		CourseID:  req.CourseID,
		StudentID: studentID,
		Comment:   req.Comment,
	}

	if err := s.feedbackRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.CommentResponse{
		ID:        comment.ID,
		CourseID:  comment.CourseID,
		StudentID: comment.StudentID,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// GetComments lists a course's comments with student names
func (s *feedbackServiceImpl) GetComments(ctx context.Context, courseID int64) ([]dto.CommentResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	comments, err := s.feedbackRepo.GetCommentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, dto.CommentResponse{
			ID:          c.ID,
			CourseID:    c.CourseID,
			StudentID:   c.StudentID,
			StudentName: c.StudentName,
			Comment:     c.Comment,
			CreatedAt:   c.CreatedAt,
		})
	}

	return responses, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/exambank/backend/internal/app/models"
)

// FeedbackRepository handles database operations for course ratings and comments
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// UpsertRating stores a student's rating for a course. Rating twice with the
// same (course, student) pair keeps exactly one row holding the latest value;
// the UNIQUE constraint backs the ON CONFLICT clause.
func (r *FeedbackRepository) UpsertRating(ctx context.Context, rating *models.CourseRating) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_ratings (course_id, student_id, rating)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (course_id, student_id)
		 DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
		 RETURNING id, updated_at`,
		rating.CourseID, rating.StudentID, rating.Rating,
	).Scan(&rating.ID, &rating.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting rating: %w", err)
	}
	return nil
}

// GetRatingSummary returns the average rating and count for a course, plus the
// given student's own rating (0 when the student has not rated).
func (r *FeedbackRepository) GetRatingSummary(ctx context.Context, courseID, studentID int64) (avg float64, count int64, own int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM course_ratings WHERE course_id = $1`,
		courseID,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error aggregating ratings: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT rating FROM course_ratings WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID,
	).Scan(&own)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return avg, count, 0, nil
		}
		return 0, 0, 0, fmt.Errorf("error retrieving own rating: %w", err)
	}

	return avg, count, own, nil
}

// CreateComment inserts a student comment on a course
func (r *FeedbackRepository) CreateComment(ctx context.Context, comment *models.CourseComment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_comments (course_id, student_id, comment)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		comment.CourseID, comment.StudentID, comment.Comment,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting comment: %w", err)
	}
	return nil
}

// GetCommentsByCourse retrieves a course's comments with student names
func (r *FeedbackRepository) GetCommentsByCourse(ctx context.Context, courseID int64) ([]*models.CourseComment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.course_id, c.student_id, c.comment, c.created_at, s.name
		 FROM course_comments c
		 JOIN students s ON s.id = c.student_id
		 WHERE c.course_id = $1
		 ORDER BY c.id DESC`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.CourseComment
	for rows.Next() {
		var c models.CourseComment
		if err := rows.Scan(&c.ID, &c.CourseID, &c.StudentID, &c.Comment, &c.CreatedAt, &c.StudentName); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/pkg/apperrors"
)

// QARepository handles database operations for course questions and answers
type QARepository struct {
	db *pgxpool.Pool
}

// NewQARepository creates a new QARepository
func NewQARepository(db *pgxpool.Pool) *QARepository {
	return &QARepository{db: db}
}

// CreateQuestion inserts a student question on a course
func (r *QARepository) CreateQuestion(ctx context.Context, question *models.CourseQuestion) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_questions (course_id, student_id, question)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		question.CourseID, question.StudentID, question.Question,
	).Scan(&question.ID, &question.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting question: %w", err)
	}
	return nil
}

// GetByID retrieves a single question
func (r *QARepository) GetByID(ctx context.Context, id int64) (*models.CourseQuestion, error) {
	var q models.CourseQuestion
	err := r.db.QueryRow(ctx,
		`SELECT id, course_id, student_id, question, COALESCE(answer, ''), answered_at, created_at
		 FROM course_questions
		 WHERE id = $1`,
		id,
	).Scan(&q.ID, &q.CourseID, &q.StudentID, &q.Question, &q.Answer, &q.AnsweredAt, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}
	return &q, nil
}

// GetByCourse retrieves a course's questions with the asking student's name
func (r *QARepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.CourseQuestion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT q.id, q.course_id, q.student_id, q.question,
			COALESCE(q.answer, ''), q.answered_at, q.created_at, s.name
		 FROM course_questions q
		 JOIN students s ON s.id = q.student_id
		 WHERE q.course_id = $1
		 ORDER BY q.id DESC`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.CourseQuestion
	for rows.Next() {
		var q models.CourseQuestion
		if err := rows.Scan(&q.ID, &q.CourseID, &q.StudentID, &q.Question,
			&q.Answer, &q.AnsweredAt, &q.CreatedAt, &q.StudentName); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

// Answer records the teacher's answer on a question
func (r *QARepository) Answer(ctx context.Context, questionID int64, answer string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE course_questions SET answer = $1, answered_at = NOW() WHERE id = $2`,
		answer, questionID)
	if err != nil {
		return fmt.Errorf("error answering question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}

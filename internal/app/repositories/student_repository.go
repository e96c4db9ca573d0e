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

// StudentRepository handles database operations for the 'students' table
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO students (name, email, password, image, department_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		student.Name, student.Email, student.Password, student.Image, student.DepartmentID,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

// GetByEmail retrieves a student by email for login
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, image, department_id, created_at
		 FROM students WHERE email = $1`,
		email,
	).Scan(&student.ID, &student.Name, &student.Email, &student.Password,
		&student.Image, &student.DepartmentID, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, image, department_id, created_at
		 FROM students WHERE id = $1`,
		id,
	).Scan(&student.ID, &student.Name, &student.Email, &student.Password,
		&student.Image, &student.DepartmentID, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetAll retrieves students, paginated
func (r *StudentRepository) GetAll(ctx context.Context, page, pageSize int) ([]*models.Student, int64, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, image, department_id, created_at, COUNT(*) OVER()
		 FROM students
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	var total int64
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Image, &s.DepartmentID, &s.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		students = append(students, &s)
	}

	return students, total, rows.Err()
}

// Update writes profile fields. The caller passes the full row; empty-field
// merging happens in the service layer.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET name = $1, password = $2, image = $3, department_id = $4
		 WHERE id = $5`,
		student.Name, student.Password, student.Image, student.DepartmentID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ExistsByEmail checks whether a student with this email already exists
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

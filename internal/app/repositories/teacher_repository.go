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

// TeacherRepository handles database operations for the 'teachers' table
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO teachers (name, email, password, image, department_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		teacher.Name, teacher.Email, teacher.Password, teacher.Image, teacher.DepartmentID,
	).Scan(&teacher.ID, &teacher.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

// GetByEmail retrieves a teacher by email for login
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, image, department_id, created_at
		 FROM teachers WHERE email = $1`,
		email,
	).Scan(&teacher.ID, &teacher.Name, &teacher.Email, &teacher.Password,
		&teacher.Image, &teacher.DepartmentID, &teacher.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &teacher, nil
}

// GetByID retrieves a teacher by id
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, image, department_id, created_at
		 FROM teachers WHERE id = $1`,
		id,
	).Scan(&teacher.ID, &teacher.Name, &teacher.Email, &teacher.Password,
		&teacher.Image, &teacher.DepartmentID, &teacher.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &teacher, nil
}

// GetAll retrieves teachers, paginated
func (r *TeacherRepository) GetAll(ctx context.Context, page, pageSize int) ([]*models.Teacher, int64, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, image, department_id, created_at, COUNT(*) OVER()
		 FROM teachers
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	var total int64
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Image, &t.DepartmentID, &t.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		teachers = append(teachers, &t)
	}

	return teachers, total, rows.Err()
}

// Update writes profile fields
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE teachers SET name = $1, password = $2, image = $3, department_id = $4
		 WHERE id = $5`,
		teacher.Name, teacher.Password, teacher.Image, teacher.DepartmentID, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// Delete removes a teacher by id
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// ExistsByEmail checks whether a teacher with this email already exists
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher existence: %w", err)
	}
	return exists, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/db"
	"github.com/exambank/backend/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses and their links
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course and its links in one transaction so a failed link
// insert rolls back the course row.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course, links []*models.CourseLink) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO courses
				(title, course_tag, description, image, category_id, department_id,
				 teacher_id, benefit1, benefit2, prerequisite1, prerequisite2, year)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			course.Title, course.CourseTag, course.Description, course.Image,
			course.CategoryID, course.DepartmentID, course.TeacherID,
			course.Benefit1, course.Benefit2, course.Prereq1, course.Prereq2,
			course.Year,
		).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error inserting course: %w", err)
		}

		if err := insertLinks(ctx, tx, course.ID, links); err != nil {
			return err
		}

		course.Links = links
		return nil
	})
}

// Update rewrites a course owned by teacherID and replaces its links in the
// same transaction. Returns ErrCourseNotFound when the row is absent or owned
// by another teacher.
func (r *CourseRepository) Update(ctx context.Context, teacherID int64, course *models.Course, links []*models.CourseLink) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE courses
			SET title = $1, course_tag = $2, description = $3, image = $4,
				category_id = $5, department_id = $6, benefit1 = $7, benefit2 = $8,
				prerequisite1 = $9, prerequisite2 = $10, year = $11, updated_at = NOW()
			WHERE id = $12 AND teacher_id = $13
		`

		cmdTag, err := tx.Exec(ctx, query,
			course.Title, course.CourseTag, course.Description, course.Image,
			course.CategoryID, course.DepartmentID,
			course.Benefit1, course.Benefit2, course.Prereq1, course.Prereq2,
			course.Year, course.ID, teacherID,
		)
		if err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM course_links WHERE course_id = $1`, course.ID); err != nil {
			return fmt.Errorf("error clearing course links: %w", err)
		}

		if err := insertLinks(ctx, tx, course.ID, links); err != nil {
			return err
		}

		course.Links = links
		return nil
	})
}

// insertLinks inserts the given links for courseID inside tx
func insertLinks(ctx context.Context, tx pgx.Tx, courseID int64, links []*models.CourseLink) error {
	for _, link := range links {
		err := tx.QueryRow(ctx,
			`INSERT INTO course_links (course_id, link_name, link) VALUES ($1, $2, $3) RETURNING id`,
			courseID, link.LinkName, link.Link,
		).Scan(&link.ID)
		if err != nil {
			return fmt.Errorf("error inserting course link: %w", err)
		}
		link.CourseID = courseID
	}
	return nil
}

// GetByID retrieves a course and its links
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, title, course_tag, description, image, category_id,
			department_id, teacher_id, benefit1, benefit2, prerequisite1,
			prerequisite2, year, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Title, &course.CourseTag, &course.Description,
		&course.Image, &course.CategoryID, &course.DepartmentID, &course.TeacherID,
		&course.Benefit1, &course.Benefit2, &course.Prereq1, &course.Prereq2,
		&course.Year, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	links, err := r.GetLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Links = links

	return &course, nil
}

// GetLinks retrieves the links owned by a course
func (r *CourseRepository) GetLinks(ctx context.Context, courseID int64) ([]*models.CourseLink, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, course_id, link_name, link FROM course_links WHERE course_id = $1 ORDER BY id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course links: %w", err)
	}
	defer rows.Close()

	var links []*models.CourseLink
	for rows.Next() {
		var link models.CourseLink
		if err := rows.Scan(&link.ID, &link.CourseID, &link.LinkName, &link.Link); err != nil {
			return nil, err
		}
		links = append(links, &link)
	}

	return links, rows.Err()
}

// GetAll retrieves courses with optional category/department filters,
// paginated, with each course's average rating.
func (r *CourseRepository) GetAll(ctx context.Context, categoryID, departmentID int64, page, pageSize int) ([]*models.Course, []float64, int64, error) {
	query := squirrel.Select(
		"c.id", "c.title", "c.course_tag", "c.description", "c.image",
		"c.category_id", "c.department_id", "c.teacher_id",
		"c.benefit1", "c.benefit2", "c.prerequisite1", "c.prerequisite2",
		"c.year", "c.created_at", "c.updated_at",
		"COALESCE(AVG(r.rating), 0)",
	).
		From("courses c").
		LeftJoin("course_ratings r ON r.course_id = c.id").
		GroupBy("c.id").
		OrderBy("c.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if categoryID > 0 {
		query = query.Where("c.category_id = ?", categoryID)
	}
	if departmentID > 0 {
		query = query.Where("c.department_id = ?", departmentID)
	}

	offset := (page - 1) * pageSize
	query = query.Limit(uint64(pageSize)).Offset(uint64(offset)).
		Column("COUNT(*) OVER()")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	var averages []float64
	var total int64

	for rows.Next() {
		var course models.Course
		var avg float64
		err := rows.Scan(
			&course.ID, &course.Title, &course.CourseTag, &course.Description,
			&course.Image, &course.CategoryID, &course.DepartmentID, &course.TeacherID,
			&course.Benefit1, &course.Benefit2, &course.Prereq1, &course.Prereq2,
			&course.Year, &course.CreatedAt, &course.UpdatedAt,
			&avg, &total,
		)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, &course)
		averages = append(averages, avg)
	}

	return courses, averages, total, rows.Err()
}

// GetAllByTeacher retrieves a teacher's own courses, paginated
func (r *CourseRepository) GetAllByTeacher(ctx context.Context, teacherID int64, page, pageSize int) ([]*models.Course, int64, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, title, course_tag, description, image, category_id,
			department_id, teacher_id, benefit1, benefit2, prerequisite1,
			prerequisite2, year, created_at, updated_at,
			COUNT(*) OVER()
		FROM courses
		WHERE teacher_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, teacherID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	var total int64

	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID, &course.Title, &course.CourseTag, &course.Description,
			&course.Image, &course.CategoryID, &course.DepartmentID, &course.TeacherID,
			&course.Benefit1, &course.Benefit2, &course.Prereq1, &course.Prereq2,
			&course.Year, &course.CreatedAt, &course.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, total, rows.Err()
}

// Delete removes a course owned by teacherID. Links, questions, comments and
// ratings cascade at the schema level.
func (r *CourseRepository) Delete(ctx context.Context, teacherID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM courses WHERE id = $1 AND teacher_id = $2`,
		courseID, teacherID)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

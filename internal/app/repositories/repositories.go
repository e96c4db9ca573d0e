package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	AdminRepository      *AdminRepository
	CourseRepository     *CourseRepository
	QARepository         *QARepository
	FeedbackRepository   *FeedbackRepository
	DepartmentRepository *DepartmentRepository
	CategoryRepository   *CategoryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		AdminRepository:      NewAdminRepository(db),
		CourseRepository:     NewCourseRepository(db),
		QARepository:         NewQARepository(db),
		FeedbackRepository:   NewFeedbackRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CategoryRepository:   NewCategoryRepository(db),
	}
}

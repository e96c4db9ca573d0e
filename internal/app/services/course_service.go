package services

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/repositories"
	"github.com/exambank/backend/internal/pkg/apperrors"
	"github.com/exambank/backend/internal/pkg/filestorage"
	"github.com/exambank/backend/internal/pkg/helpers"
	"github.com/exambank/backend/internal/pkg/validation"
)

// CourseService defines course CRUD and browsing operations
type CourseService interface {
	CreateCourse(ctx context.Context, teacherID int64, req *dto.CourseRequest, image *multipart.FileHeader) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, teacherID, courseID int64, req *dto.CourseRequest, image *multipart.FileHeader) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, teacherID, courseID int64) error
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetTeacherCourses(ctx context.Context, teacherID int64, page, pageSize int) (*dto.CourseListResponse, error)
	BrowseCourses(ctx context.Context, filter *dto.CourseFilter) (*dto.CourseListResponse, error)
}

type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	categoryRepo   *repositories.CategoryRepository
	departmentRepo *repositories.DepartmentRepository
	fileStorage    filestorage.FileStorage
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	categoryRepo *repositories.CategoryRepository,
	departmentRepo *repositories.DepartmentRepository,
	fileStorage filestorage.FileStorage,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		categoryRepo:   categoryRepo,
		departmentRepo: departmentRepo,
		fileStorage:    fileStorage,
	}
}

// parseLinks decodes the JSON-stringified links field of the multipart body
// and validates each entry.
func parseLinks(raw string) ([]*models.CourseLink, error) {
	if raw == "" {
		return nil, nil
	}

	var payload []dto.CourseLinkPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, apperrors.NewBadRequestError("links must be a JSON array of {link_name, link}")
	}

	links := make([]*models.CourseLink, 0, len(payload))
	for _, p := range payload {
		if !validation.IsFilled(p.LinkName) || !validation.IsValidURL(p.Link) {
			return nil, apperrors.NewBadRequestError("every link needs a name and a valid URL")
		}
		links = append(links, &models.CourseLink{LinkName: p.LinkName, Link: p.Link})
	}

	return links, nil
}

// checkReferences verifies the category and department the course points at
func (s *courseServiceImpl) checkReferences(ctx context.Context, categoryID, departmentID int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return err
	}
	return nil
}

// CreateCourse inserts a course plus its links transactionally
func (s *courseServiceImpl) CreateCourse(ctx context.Context, teacherID int64, req *dto.CourseRequest, image *multipart.FileHeader) (*dto.CourseResponse, error) {
	links, err := parseLinks(req.Links)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.CategoryID, req.DepartmentID); err != nil {
		return nil, err
	}

	var storedImage string
	if image != nil {
		storedImage, err = s.fileStorage.SaveFile(image, "image")
		if err != nil {
			return nil, err
		}
	}

	course := &models.Course{
		Title:        req.Title,
		CourseTag:    req.CourseTag,
		Description:  req.Description,
		Image:        storedImage,
		CategoryID:   req.CategoryID,
		DepartmentID: req.DepartmentID,
		TeacherID:    teacherID,
		Benefit1:     req.Benefit1,
		Benefit2:     req.Benefit2,
		Prereq1:      req.Prereq1,
		Prereq2:      req.Prereq2,
		Year:         req.Year,
	}

	if err := s.courseRepo.Create(ctx, course, links); err != nil {
		// The transaction rolled back; remove the stored image so nothing
		// orphaned stays on disk.
		if storedImage != "" {
			_ = s.fileStorage.DeleteFile(storedImage)
		}
		return nil, err
	}

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// UpdateCourse rewrites a course owned by teacherID and replaces its links
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, teacherID, courseID int64, req *dto.CourseRequest, image *multipart.FileHeader) (*dto.CourseResponse, error) {
	existing, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if existing.TeacherID != teacherID {
		return nil, apperrors.ErrCourseNotFound
	}

	links, err := parseLinks(req.Links)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.CategoryID, req.DepartmentID); err != nil {
		return nil, err
	}

	storedImage := existing.Image
	if image != nil {
		storedImage, err = s.fileStorage.SaveFile(image, "image")
		if err != nil {
			return nil, err
		}
	}

	course := &models.Course{
		ID:           courseID,
		Title:        req.Title,
		CourseTag:    req.CourseTag,
		Description:  req.Description,
		Image:        storedImage,
		CategoryID:   req.CategoryID,
		DepartmentID: req.DepartmentID,
		TeacherID:    teacherID,
		Benefit1:     req.Benefit1,
		Benefit2:     req.Benefit2,
		Prereq1:      req.Prereq1,
		Prereq2:      req.Prereq2,
		Year:         req.Year,
	}

	if err := s.courseRepo.Update(ctx, teacherID, course, links); err != nil {
		return nil, err
	}

	// Replaced image file is no longer referenced
	if image != nil && existing.Image != "" && existing.Image != storedImage {
		_ = s.fileStorage.DeleteFile(existing.Image)
	}

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// DeleteCourse removes a course owned by teacherID and its stored image
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, teacherID, courseID int64) error {
	existing, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if existing.TeacherID != teacherID {
		return apperrors.ErrCourseNotFound
	}

	if err := s.courseRepo.Delete(ctx, teacherID, courseID); err != nil {
		return err
	}

	if existing.Image != "" {
		_ = s.fileStorage.DeleteFile(existing.Image)
	}

	return nil
}

// GetCourse retrieves one course with its links
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// GetTeacherCourses lists a teacher's own courses with links, paginated
func (s *courseServiceImpl) GetTeacherCourses(ctx context.Context, teacherID int64, page, pageSize int) (*dto.CourseListResponse, error) {
	courses, total, err := s.courseRepo.GetAllByTeacher(ctx, teacherID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		links, err := s.courseRepo.GetLinks(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		course.Links = links
		responses = append(responses, dto.NewCourseResponse(course))
	}

	return &dto.CourseListResponse{
		Courses:        responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// BrowseCourses lists courses for the student portal with optional filters
// and per-course average ratings.
func (s *courseServiceImpl) BrowseCourses(ctx context.Context, filter *dto.CourseFilter) (*dto.CourseListResponse, error) {
	courses, averages, total, err := s.courseRepo.GetAll(ctx, filter.CategoryID, filter.DepartmentID, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i, course := range courses {
		resp := dto.NewCourseResponse(course)
		resp.AverageRating = averages[i]
		responses = append(responses, resp)
	}

	return &dto.CourseListResponse{
		Courses:        responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

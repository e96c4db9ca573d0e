package dto

import "github.com/exambank/backend/internal/app/models"

// CourseLinkPayload is one entry of the JSON-stringified `links` multipart
// field. The wizard's link {title, url} pair is renamed on the wire.
type CourseLinkPayload struct {
	LinkName string `json:"link_name" binding:"required"`
	Link     string `json:"link" binding:"required,url"`
}

// CourseRequest is the multipart body of POST /teacher/add-cours and
// PUT /teacher/course/:id. Links arrive as a single JSON string field because
// the persistence API expects a JSON string, not nested multipart fields; the
// optional image file arrives in the `image` field.
type CourseRequest struct {
	Title        string `form:"title" binding:"required"`
	CourseTag    string `form:"course_tag" binding:"required"`
	Description  string `form:"description" binding:"required"`
	Year         string `form:"year" binding:"required,courseyear"`
	CategoryID   int64  `form:"category_id" binding:"required,min=1"`
	DepartmentID int64  `form:"department_id" binding:"required,min=1"`
	Benefit1     string `form:"benefit1"`
	Benefit2     string `form:"benefit2"`
	Prereq1      string `form:"prerequisite1"`
	Prereq2      string `form:"prerequisite2"`
	Links        string `form:"links"` // JSON array of CourseLinkPayload
}

// CourseResponse is the detail payload for a course
type CourseResponse struct {
	ID            int64                `json:"id"`
	Title         string               `json:"title"`
	CourseTag     string               `json:"course_tag"`
	Description   string               `json:"description"`
	Image         string               `json:"image"`
	CategoryID    int64                `json:"category_id"`
	DepartmentID  int64                `json:"department_id"`
	TeacherID     int64                `json:"teacher_id"`
	Benefit1      string               `json:"benefit1"`
	Benefit2      string               `json:"benefit2"`
	Prereq1       string               `json:"prerequisite1"`
	Prereq2       string               `json:"prerequisite2"`
	Year          string               `json:"year"`
	Links         []*models.CourseLink `json:"links"`
	AverageRating float64              `json:"average_rating,omitempty"`
}

// CourseListResponse is the paginated list payload
type CourseListResponse struct {
	Courses        []CourseResponse `json:"courses"`
	PaginationInfo PaginationInfo   `json:"pagination"`
}

// CourseFilter carries the optional browse filters of the student course list
type CourseFilter struct {
	CategoryID   int64
	DepartmentID int64
	Page         int
	PageSize     int
}

// NewCourseResponse maps a course row and its links to the response shape
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		CourseTag:    course.CourseTag,
		Description:  course.Description,
		Image:        course.Image,
		CategoryID:   course.CategoryID,
		DepartmentID: course.DepartmentID,
		TeacherID:    course.TeacherID,
		Benefit1:     course.Benefit1,
		Benefit2:     course.Benefit2,
		Prereq1:      course.Prereq1,
		Prereq2:      course.Prereq2,
		Year:         course.Year,
		Links:        course.Links,
	}
}

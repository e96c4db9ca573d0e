package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
	"github.com/exambank/backend/internal/pkg/helpers"
)

// CourseController handles teacher course CRUD and the student course browser
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// AddCourse handles POST /teacher/add-cours (multipart)
func (ctrl *CourseController) AddCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("title, course_tag, description, year, category_id and department_id are required"))
		return
	}

	image, _ := c.FormFile("image")

	course, err := ctrl.courseService.CreateCourse(c.Request.Context(), middleware.UserID(c), &req, image)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(course))
}

// UpdateCourse handles PUT /teacher/course/:id (multipart)
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("title, course_tag, description, year, category_id and department_id are required"))
		return
	}

	image, _ := c.FormFile("image")

	course, err := ctrl.courseService.UpdateCourse(c.Request.Context(), middleware.UserID(c), courseID, &req, image)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(course))
}

// DeleteCourse handles DELETE /teacher/course/:id
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.courseService.DeleteCourse(c.Request.Context(), middleware.UserID(c), courseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("course deleted"))
}

// GetCourse handles GET /teacher/course/:id and GET /student/course/:id
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := ctrl.courseService.GetCourse(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(course))
}

// GetTeacherCourses handles GET /teacher/get-all-course
func (ctrl *CourseController) GetTeacherCourses(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	courses, err := ctrl.courseService.GetTeacherCourses(c.Request.Context(), middleware.UserID(c), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(courses))
}

// BrowseCourses handles GET /student/get-all-course with optional category_id
// and department_id filters.
func (ctrl *CourseController) BrowseCourses(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	filter := &dto.CourseFilter{
		CategoryID:   queryID(c, "category_id"),
		DepartmentID: queryID(c, "department_id"),
		Page:         page,
		PageSize:     size,
	}

	courses, err := ctrl.courseService.BrowseCourses(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(courses))
}

// pathID parses a positive int64 path parameter. On failure it writes the 400
// response itself and returns ok=false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Failure("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive int64 query parameter, 0 when absent
func queryID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

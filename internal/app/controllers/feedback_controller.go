package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
)

// FeedbackController handles course ratings and comments
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// RateCourse handles POST /student/rate-course. Rating the same course twice
// updates the stored value.
func (ctrl *FeedbackController) RateCourse(c *gin.Context) {
	var req dto.RateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("course_id and a rating between 1 and 5 are required"))
		return
	}

	rating, err := ctrl.feedbackService.RateCourse(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(rating))
}

// GetRating handles GET /student/rating/:course_id
func (ctrl *FeedbackController) GetRating(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	rating, err := ctrl.feedbackService.GetRating(c.Request.Context(), courseID, middleware.UserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(rating))
}

// AddComment handles POST /student/add-comment
func (ctrl *FeedbackController) AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("course_id and comment are required"))
		return
	}

	comment, err := ctrl.feedbackService.AddComment(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(comment))
}

// GetComments handles GET /student/comments/:course_id
func (ctrl *FeedbackController) GetComments(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	comments, err := ctrl.feedbackService.GetComments(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(comments))
}

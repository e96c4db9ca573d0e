package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
)

// QAController handles course questions and answers
type QAController struct {
	qaService services.QAService
}

// NewQAController creates a new QAController
func NewQAController(qaService services.QAService) *QAController {
	return &QAController{qaService: qaService}
}

// AskQuestion handles POST /student/ask-question
func (ctrl *QAController) AskQuestion(c *gin.Context) {
	var req dto.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("course_id and question are required"))
		return
	}

	question, err := ctrl.qaService.AskQuestion(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(question))
}

// AnswerQuestion handles POST /teacher/answer-quation. The misspelled path is
// kept as-is because the deployed portals already call it.
func (ctrl *QAController) AnswerQuestion(c *gin.Context) {
	var req dto.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("question_id and answer are required"))
		return
	}

	if err := ctrl.qaService.AnswerQuestion(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("answer saved"))
}

// GetCourseQA handles GET /teacher/get-QA/:course_id and
// GET /student/get-QA/:course_id.
func (ctrl *QAController) GetCourseQA(c *gin.Context) {
	courseID, ok := pathID(c, "course_id")
	if !ok {
		return
	}

	qa, err := ctrl.qaService.GetCourseQA(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(qa))
}

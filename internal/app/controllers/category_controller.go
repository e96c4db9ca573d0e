package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
)

// CategoryController handles course category lookups and admin CRUD
type CategoryController struct {
	categoryService services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetCategories handles GET /categories
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(categories))
}

// CreateCategory handles POST /admin/category
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("name is required"))
		return
	}

	category, err := ctrl.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(category))
}

// UpdateCategory handles PUT /admin/category/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("name is required"))
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(category))
}

// DeleteCategory handles DELETE /admin/category/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("category deleted"))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
)

// DepartmentController handles department lookups and admin CRUD
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// GetDepartments handles GET /departments. Public because the sign-up form
// needs the list before any account exists.
func (ctrl *DepartmentController) GetDepartments(c *gin.Context) {
	departments, err := ctrl.departmentService.GetAllDepartments(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(departments))
}

// CreateDepartment handles POST /admin/department
func (ctrl *DepartmentController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("name is required"))
		return
	}

	department, err := ctrl.departmentService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(department))
}

// UpdateDepartment handles PUT /admin/department/:id
func (ctrl *DepartmentController) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("name is required"))
		return
	}

	department, err := ctrl.departmentService.UpdateDepartment(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(department))
}

// DeleteDepartment handles DELETE /admin/department/:id
func (ctrl *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.departmentService.DeleteDepartment(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("department deleted"))
}

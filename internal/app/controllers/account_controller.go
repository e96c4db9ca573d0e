package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
	"github.com/exambank/backend/internal/pkg/auth"
	"github.com/exambank/backend/internal/pkg/helpers"
)

// AccountController handles admin account management and the per-role profile
// endpoints.
type AccountController struct {
	accountService services.AccountService
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService services.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// GetAccounts handles GET /admin/get-account. The `role` query selects
// students (default) or teachers.
func (ctrl *AccountController) GetAccounts(c *gin.Context) {
	role, ok := auth.ParseRole(c.DefaultQuery("role", string(auth.RoleStudent)))
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Failure("unknown role"))
		return
	}

	page, size := helpers.ParsePaginationParams(c)

	accounts, err := ctrl.accountService.ListAccounts(c.Request.Context(), role, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(accounts))
}

// AddAccount handles POST /admin/add-account
func (ctrl *AccountController) AddAccount(c *gin.Context) {
	var req dto.AddAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("role, name, email and password are required"))
		return
	}

	account, err := ctrl.accountService.AddAccount(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(account))
}

// DeleteStudent handles DELETE /admin/delete-student/:id
func (ctrl *AccountController) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.accountService.DeleteStudent(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("student deleted"))
}

// DeleteTeacher handles DELETE /admin/delete-teacher/:id
func (ctrl *AccountController) DeleteTeacher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.accountService.DeleteTeacher(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("teacher deleted"))
}

// GetProfile returns a handler for GET /<role>/profile
func (ctrl *AccountController) GetProfile(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := ctrl.accountService.GetProfile(c.Request.Context(), role, middleware.UserID(c))
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.Success(profile))
	}
}

// UpdateProfile returns a handler for PUT /<role>/profile (multipart)
func (ctrl *AccountController) UpdateProfile(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateProfileRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("invalid profile fields"))
			return
		}

		image, _ := c.FormFile("image")

		profile, err := ctrl.accountService.UpdateProfile(c.Request.Context(), role, middleware.UserID(c), &req, image)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.Success(profile))
	}
}

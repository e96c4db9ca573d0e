package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/services"
	"github.com/exambank/backend/internal/middleware"
	"github.com/exambank/backend/internal/pkg/auth"
)

// AuthController handles sign-up and per-role login endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// StudentSignUp handles POST /student/student-sign-up. The body is multipart
// so the optional profile image can ride along with the form fields.
func (ctrl *AuthController) StudentSignUp(c *gin.Context) {
	var req dto.StudentSignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("name, email, password and department_id are required"))
		return
	}

	image, _ := c.FormFile("image")

	account, err := ctrl.authService.StudentSignUp(c.Request.Context(), &req, image)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(account))
}

// Login returns a handler for POST /<role>/login. The role is fixed per route
// group so the same controller serves all three portals.
func (ctrl *AuthController) Login(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("email and password are required"))
			return
		}

		resp, err := ctrl.authService.Login(c.Request.Context(), role, &req)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.Success(resp))
	}
}

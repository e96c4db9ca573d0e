package dto

// LoginRequest is the body of POST /<role>/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the success payload of a login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

// StudentSignUpRequest is the multipart body of POST /student/student-sign-up.
// The optional image file arrives in the `image` field alongside these.
type StudentSignUpRequest struct {
	Name         string `form:"name" binding:"required,min=2,max=100"`
	Email        string `form:"email" binding:"required,email"`
	Password     string `form:"password" binding:"required,min=6"`
	DepartmentID int64  `form:"department_id" binding:"required,min=1"`
}

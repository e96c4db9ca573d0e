package dto

import "time"

// AddAccountRequest is the body of POST /admin/add-account. Role selects the
// target table; department_id is required for students and teachers only.
type AddAccountRequest struct {
	Role         string `json:"role" binding:"required,oneof=student teacher admin"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	DepartmentID int64  `json:"department_id"`
}

// AccountResponse is one account row as shown in the admin portal
type AccountResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Image        string    `json:"image"`
	DepartmentID int64     `json:"department_id,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountListResponse is the paginated account list payload
type AccountListResponse struct {
	Accounts       []AccountResponse `json:"accounts"`
	PaginationInfo PaginationInfo    `json:"pagination"`
}

// UpdateProfileRequest is the multipart body of PUT /<role>/profile. Empty
// fields are left unchanged; a new image arrives in the `image` field.
type UpdateProfileRequest struct {
	Name         string `form:"name"`
	Password     string `form:"password"`
	DepartmentID int64  `form:"department_id"`
}

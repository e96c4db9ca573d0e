package dto

// CreateDepartmentRequest is the body of POST /admin/department
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateDepartmentRequest is the body of PUT /admin/department/:id
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateCategoryRequest is the body of POST /admin/category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateCategoryRequest is the body of PUT /admin/category/:id
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

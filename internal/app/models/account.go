package models

import "time"

// The three account kinds live in separate tables with separate JWT secrets;
// there is no shared user supertype in the schema.

// Student represents a row in the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Image        string    `json:"image" db:"image"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Department *Department `json:"department,omitempty"`
}

// Teacher represents a row in the 'teachers' table
type Teacher struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"`
	Image        string    `json:"image" db:"image"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Department *Department `json:"department,omitempty"`
}

// Admin represents a row in the 'admins' table. Admins carry no department.
type Admin struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

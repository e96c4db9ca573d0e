package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/pkg/apperrors"
)

// AdminRepository handles database operations for the 'admins' table
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admins (name, email, password, image)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		admin.Name, admin.Email, admin.Password, admin.Image,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

// GetByEmail retrieves an admin by email for login
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, image, created_at
		 FROM admins WHERE email = $1`,
		email,
	).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.Image, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

// GetByID retrieves an admin by id
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, image, created_at
		 FROM admins WHERE id = $1`,
		id,
	).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.Image, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

// ExistsByEmail checks whether an admin with this email already exists
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}
	return exists, nil
}

package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/repositories"
	"github.com/exambank/backend/internal/pkg/apperrors"
	"github.com/exambank/backend/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@exambank.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds a default admin account plus a starter department
// and category so a fresh install is usable without manual SQL. Existing rows
// are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	categoryRepo := repositories.NewCategoryRepository(dbPool)
	adminRepo := repositories.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, name := range []string{"Computer Engineering", "Mathematics"} {
		err := departmentRepo.Create(ctx, &models.Department{Name: name})
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentExists) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range []string{"Midterm", "Final", "Quiz"} {
		err := categoryRepo.Create(ctx, &models.Category{Name: name})
		if err != nil && !errors.Is(err, apperrors.ErrCategoryExists) {
			lgr.Error().Err(err).Str("category", name).Msg("Error creating default category")
			finalErr = errors.Join(finalErr, err)
		}
	}

	exists, err := adminRepo.ExistsByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default admin exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Default admin already exists, skipping creation")
		return finalErr
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return errors.Join(finalErr, err)
	}

	admin := &models.Admin{
		Name:     "System Administrator",
		Email:    defaultAdminEmail,
		Password: hashed,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("adminId", admin.ID).Msg("Default admin created")
	return finalErr
}

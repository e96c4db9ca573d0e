package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/repositories"
	"github.com/exambank/backend/internal/pkg/apperrors"
	"github.com/exambank/backend/internal/pkg/auth"
	"github.com/exambank/backend/internal/pkg/filestorage"
)

// AuthService defines sign-up and login operations
type AuthService interface {
	StudentSignUp(ctx context.Context, req *dto.StudentSignUpRequest, image *multipart.FileHeader) (*dto.AccountResponse, error)
	Login(ctx context.Context, role auth.Role, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	studentRepo    *repositories.StudentRepository
	teacherRepo    *repositories.TeacherRepository
	adminRepo      *repositories.AdminRepository
	departmentRepo *repositories.DepartmentRepository
	fileStorage    filestorage.FileStorage
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	teacherRepo *repositories.TeacherRepository,
	adminRepo *repositories.AdminRepository,
	departmentRepo *repositories.DepartmentRepository,
	fileStorage filestorage.FileStorage,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		adminRepo:      adminRepo,
		departmentRepo: departmentRepo,
		fileStorage:    fileStorage,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// StudentSignUp registers a new student account
func (s *authServiceImpl) StudentSignUp(ctx context.Context, req *dto.StudentSignUpRequest, image *multipart.FileHeader) (*dto.AccountResponse, error) {
	exists, err := s.studentRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var storedImage string
	if image != nil {
		storedImage, err = s.fileStorage.SaveFile(image, "image")
		if err != nil {
			return nil, err
		}
	}

	student := &models.Student{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		Image:        storedImage,
		DepartmentID: req.DepartmentID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("email", student.Email).Msg("Student signed up")

	return &dto.AccountResponse{
		ID:           student.ID,
		Name:         student.Name,
		Email:        student.Email,
		Image:        student.Image,
		DepartmentID: student.DepartmentID,
		Role:         string(auth.RoleStudent),
		CreatedAt:    student.CreatedAt,
	}, nil
}

// Login authenticates an account of the given role and issues a token signed
// with that role's secret. Wrong email and wrong password are collapsed into
// the same error so the response does not leak which one failed.
func (s *authServiceImpl) Login(ctx context.Context, role auth.Role, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		id     int64
		name   string
		hashed string
	)

	switch role {
	case auth.RoleStudent:
		student, err := s.studentRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		id, name, hashed = student.ID, student.Name, student.Password
	case auth.RoleTeacher:
		teacher, err := s.teacherRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		id, name, hashed = teacher.ID, teacher.Name, teacher.Password
	case auth.RoleAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		id, name, hashed = admin.ID, admin.Name, admin.Password
	default:
		return nil, apperrors.ErrUnknownRole
	}

	if !auth.CheckPassword(hashed, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(role, id, req.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", id).Str("role", string(role)).Msg("Login successful")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		ID:        id,
		Name:      name,
		Role:      string(role),
	}, nil
}

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
	"github.com/exambank/backend/internal/pkg/dberrors"
	"github.com/exambank/backend/internal/pkg/filestorage"
	"github.com/exambank/backend/internal/pkg/helpers"
)

// AccountService defines admin account management and per-role profiles
type AccountService interface {
	ListAccounts(ctx context.Context, role auth.Role, page, pageSize int) (*dto.AccountListResponse, error)
	AddAccount(ctx context.Context, req *dto.AddAccountRequest) (*dto.AccountResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	DeleteTeacher(ctx context.Context, id int64) error

	GetProfile(ctx context.Context, role auth.Role, id int64) (*dto.AccountResponse, error)
	UpdateProfile(ctx context.Context, role auth.Role, id int64, req *dto.UpdateProfileRequest, image *multipart.FileHeader) (*dto.AccountResponse, error)
}

type accountServiceImpl struct {
	studentRepo *repositories.StudentRepository
	teacherRepo *repositories.TeacherRepository
	adminRepo   *repositories.AdminRepository
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	studentRepo *repositories.StudentRepository,
	teacherRepo *repositories.TeacherRepository,
	adminRepo *repositories.AdminRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) AccountService {
	return &accountServiceImpl{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// ListAccounts lists student or teacher accounts for the admin portal
func (s *accountServiceImpl) ListAccounts(ctx context.Context, role auth.Role, page, pageSize int) (*dto.AccountListResponse, error) {
	var (
		accounts []dto.AccountResponse
		total    int64
	)

	switch role {
	case auth.RoleStudent:
		students, t, err := s.studentRepo.GetAll(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		total = t
		for _, st := range students {
			accounts = append(accounts, dto.AccountResponse{
				ID: st.ID, Name: st.Name, Email: st.Email, Image: st.Image,
				DepartmentID: st.DepartmentID, Role: string(auth.RoleStudent), CreatedAt: st.CreatedAt,
			})
		}
	case auth.RoleTeacher:
		teachers, t, err := s.teacherRepo.GetAll(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		total = t
		for _, te := range teachers {
			accounts = append(accounts, dto.AccountResponse{
				ID: te.ID, Name: te.Name, Email: te.Email, Image: te.Image,
				DepartmentID: te.DepartmentID, Role: string(auth.RoleTeacher), CreatedAt: te.CreatedAt,
			})
		}
	default:
		return nil, apperrors.ErrUnknownRole
	}

	return &dto.AccountListResponse{
		Accounts:       accounts,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// AddAccount creates an account in the table selected by the requested role
func (s *accountServiceImpl) AddAccount(ctx context.Context, req *dto.AddAccountRequest) (*dto.AccountResponse, error) {
	role, ok := auth.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.ErrUnknownRole
	}

	if (role == auth.RoleStudent || role == auth.RoleTeacher) && req.DepartmentID <= 0 {
		return nil, apperrors.NewBadRequestError("department_id is required for student and teacher accounts")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	resp := &dto.AccountResponse{Name: req.Name, Email: req.Email, Role: string(role)}

	switch role {
	case auth.RoleStudent:
		student := &models.Student{Name: req.Name, Email: req.Email, Password: hashed, DepartmentID: req.DepartmentID}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, err
		}
		resp.ID, resp.DepartmentID, resp.CreatedAt = student.ID, student.DepartmentID, student.CreatedAt
	case auth.RoleTeacher:
		teacher := &models.Teacher{Name: req.Name, Email: req.Email, Password: hashed, DepartmentID: req.DepartmentID}
		if err := s.teacherRepo.Create(ctx, teacher); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, err
		}
		resp.ID, resp.DepartmentID, resp.CreatedAt = teacher.ID, teacher.DepartmentID, teacher.CreatedAt
	case auth.RoleAdmin:
		admin := &models.Admin{Name: req.Name, Email: req.Email, Password: hashed}
		if err := s.adminRepo.Create(ctx, admin); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, err
		}
		resp.ID, resp.CreatedAt = admin.ID, admin.CreatedAt
	}

	s.logger.Info().Str("role", string(role)).Str("email", req.Email).Msg("Account created by admin")
	return resp, nil
}

// DeleteStudent removes a student account and its stored image
func (s *accountServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if student.Image != "" {
		_ = s.fileStorage.DeleteFile(student.Image)
	}

	return nil
}

// DeleteTeacher removes a teacher account and its stored image
func (s *accountServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}

	if teacher.Image != "" {
		_ = s.fileStorage.DeleteFile(teacher.Image)
	}

	return nil
}

// GetProfile returns the caller's own account row
func (s *accountServiceImpl) GetProfile(ctx context.Context, role auth.Role, id int64) (*dto.AccountResponse, error) {
	switch role {
	case auth.RoleStudent:
		student, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &dto.AccountResponse{
			ID: student.ID, Name: student.Name, Email: student.Email, Image: student.Image,
			DepartmentID: student.DepartmentID, Role: string(role), CreatedAt: student.CreatedAt,
		}, nil
	case auth.RoleTeacher:
		teacher, err := s.teacherRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &dto.AccountResponse{
			ID: teacher.ID, Name: teacher.Name, Email: teacher.Email, Image: teacher.Image,
			DepartmentID: teacher.DepartmentID, Role: string(role), CreatedAt: teacher.CreatedAt,
		}, nil
	case auth.RoleAdmin:
		admin, err := s.adminRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &dto.AccountResponse{
			ID: admin.ID, Name: admin.Name, Email: admin.Email, Image: admin.Image,
			Role: string(role), CreatedAt: admin.CreatedAt,
		}, nil
	}
	return nil, apperrors.ErrUnknownRole
}

// UpdateProfile merges the provided fields into the caller's account. Empty
// fields keep their current value.
func (s *accountServiceImpl) UpdateProfile(ctx context.Context, role auth.Role, id int64, req *dto.UpdateProfileRequest, image *multipart.FileHeader) (*dto.AccountResponse, error) {
	var storedImage string
	if image != nil {
		var err error
		storedImage, err = s.fileStorage.SaveFile(image, "image")
		if err != nil {
			return nil, err
		}
	}

	var hashed string
	if req.Password != "" {
		var err error
		hashed, err = auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
	}

	switch role {
	case auth.RoleStudent:
		student, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		oldImage := student.Image
		applyProfile(&student.Name, &student.Password, &student.Image, &student.DepartmentID, req, hashed, storedImage)
		if err := s.studentRepo.Update(ctx, student); err != nil {
			return nil, err
		}
		cleanupReplacedImage(s.fileStorage, oldImage, student.Image)
	case auth.RoleTeacher:
		teacher, err := s.teacherRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		oldImage := teacher.Image
		applyProfile(&teacher.Name, &teacher.Password, &teacher.Image, &teacher.DepartmentID, req, hashed, storedImage)
		if err := s.teacherRepo.Update(ctx, teacher); err != nil {
			return nil, err
		}
		cleanupReplacedImage(s.fileStorage, oldImage, teacher.Image)
	default:
		return nil, apperrors.ErrUnknownRole
	}

	return s.GetProfile(ctx, role, id)
}

// applyProfile merges non-empty request fields over the current row values
func applyProfile(name, password, image *string, departmentID *int64, req *dto.UpdateProfileRequest, hashed, storedImage string) {
	if req.Name != "" {
		*name = req.Name
	}
	if hashed != "" {
		*password = hashed
	}
	if storedImage != "" {
		*image = storedImage
	}
	if req.DepartmentID > 0 {
		*departmentID = req.DepartmentID
	}
}

func cleanupReplacedImage(storage filestorage.FileStorage, oldImage, newImage string) {
	if oldImage != "" && oldImage != newImage {
		_ = storage.DeleteFile(oldImage)
	}
}

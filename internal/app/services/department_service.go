package services

import (
	"context"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/repositories"
)

// DepartmentService defines department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{Name: req.Name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{ID: id, Name: req.Name}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}

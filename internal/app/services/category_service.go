package services

import (
	"context"

	"github.com/exambank/backend/internal/app/models"
	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/app/repositories"
)

// CategoryService defines course category operations
type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	GetAllCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryServiceImpl struct {
	categoryRepo *repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo *repositories.CategoryRepository) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryServiceImpl) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category := &models.Category{ID: id, Name: req.Name}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}

package service

import (
	"context"

	"topbookstore-backend/internal/domains/category/model"
	"topbookstore-backend/internal/domains/category/repository"
	"topbookstore-backend/internal/shared/utils"
)

// CategoryService doubles as the book domain's category resolver via
// FilterExisting.
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	FilterExisting(ctx context.Context, ids []int64) ([]int64, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]*model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	cat := &model.Category{
		Name:        req.Name,
		Slug:        utils.GenerateSlug(req.Name),
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (*model.Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cat.Name = req.Name
	cat.Slug = utils.GenerateSlug(req.Name)
	cat.Description = req.Description

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) FilterExisting(ctx context.Context, ids []int64) ([]int64, error) {
	return s.repo.FilterExisting(ctx, ids)
}

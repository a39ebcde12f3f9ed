package service

import (
	"context"

	"topbookstore-backend/internal/domains/author/model"
	"topbookstore-backend/internal/domains/author/repository"
	"topbookstore-backend/internal/shared/utils"
)

type AuthorService interface {
	GetAllAuthors(ctx context.Context) ([]*model.Author, error)
	GetAuthorByID(ctx context.Context, id int64) (*model.Author, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (*model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}

type authorService struct {
	repo repository.AuthorRepository
}

func NewAuthorService(repo repository.AuthorRepository) AuthorService {
	return &authorService{repo: repo}
}

func (s *authorService) GetAllAuthors(ctx context.Context) ([]*model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetAuthorByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) CreateAuthor(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	a := &model.Author{
		Name: req.Name,
		Slug: utils.GenerateSlug(req.Name),
		Bio:  req.Bio,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Name = req.Name
	a.Slug = utils.GenerateSlug(req.Name)
	a.Bio = req.Bio

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

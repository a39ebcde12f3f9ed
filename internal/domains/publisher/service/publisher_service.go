package service

import (
	"context"

	"topbookstore-backend/internal/domains/publisher/model"
	"topbookstore-backend/internal/domains/publisher/repository"
	"topbookstore-backend/internal/shared/utils"
)

type PublisherService interface {
	GetAllPublishers(ctx context.Context) ([]*model.Publisher, error)
	GetPublisherByID(ctx context.Context, id int64) (*model.Publisher, error)
	CreatePublisher(ctx context.Context, req model.PublisherRequest) (*model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, req model.PublisherRequest) (*model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error
}

type publisherService struct {
	repo repository.PublisherRepository
}

func NewPublisherService(repo repository.PublisherRepository) PublisherService {
	return &publisherService{repo: repo}
}

func (s *publisherService) GetAllPublishers(ctx context.Context) ([]*model.Publisher, error) {
	return s.repo.List(ctx)
}

func (s *publisherService) GetPublisherByID(ctx context.Context, id int64) (*model.Publisher, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *publisherService) CreatePublisher(ctx context.Context, req model.PublisherRequest) (*model.Publisher, error) {
	p := &model.Publisher{
		Name:    req.Name,
		Slug:    utils.GenerateSlug(req.Name),
		Website: req.Website,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *publisherService) UpdatePublisher(ctx context.Context, id int64, req model.PublisherRequest) (*model.Publisher, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Slug = utils.GenerateSlug(req.Name)
	p.Website = req.Website

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *publisherService) DeletePublisher(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

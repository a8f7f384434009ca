package service

import (
	"context"
	"errors"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"

	"gorm.io/gorm"
)

type TagService interface {
	Create(ctx context.Context, req dto.CreateTagRequest) (dto.TagResponse, error)
	List(ctx context.Context) ([]dto.TagResponse, error)
	Delete(ctx context.Context, id uint) error
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) Create(ctx context.Context, req dto.CreateTagRequest) (dto.TagResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TagResponse{}, err
	}
	if existing != nil {
		return dto.TagResponse{}, invalidf("ya existe una etiqueta con ese nombre")
	}

	t := &model.Tag{Name: req.Name}
	if err := s.repo.Create(ctx, t); err != nil {
		return dto.TagResponse{}, err
	}
	return dto.MapTag(t), nil
}

func (s *tagService) List(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		result = append(result, dto.MapTag(&tags[i]))
	}
	return result, nil
}

func (s *tagService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"

	"gorm.io/gorm"
)

// CategoryService defines business operations for publication categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if err := s.ensureSlugFree(ctx, slug, 0); err != nil {
		return dto.CategoryResponse{}, err
	}

	c := &model.Category{
		Name:  req.Name,
		Slug:  slug,
		Icon:  req.Icon,
		Color: req.Color,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return dto.MapCategory(c), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.MapCategory(&list[i]))
	}
	return result, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrNotFound
		}
		return dto.CategoryResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != c.Slug {
		if err := s.ensureSlugFree(ctx, *req.Slug, c.ID); err != nil {
			return dto.CategoryResponse{}, err
		}
		c.Slug = *req.Slug
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}
	if req.Color != nil {
		c.Color = *req.Color
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return dto.MapCategory(c), nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) ensureSlugFree(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return invalidf("ya existe una categoría con el slug %q", slug)
	}
	return nil
}

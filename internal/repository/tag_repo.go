package repository

import (
	"context"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(ctx context.Context, t *model.Tag) error
	List(ctx context.Context) ([]model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	// FindByIDs returns the tags matching ids; missing ids are silently
	// dropped — callers compare lengths when they need strictness.
	FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error)
	Delete(ctx context.Context, id uint) error
}

type tagRepo struct{ db *gorm.DB }

func NewTagRepository(db *gorm.DB) TagRepository { return &tagRepo{db: db} }

func (r *tagRepo) Create(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tagRepo) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepo) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var t model.Tag
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepo) FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Tag{}, id).Error
}

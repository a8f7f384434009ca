package repository

import (
	"context"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	// List returns all comments, or only the unapproved ones when
	// pendingOnly is set. Newest first, reactions preloaded.
	List(ctx context.Context, pendingOnly bool) ([]model.Comment, error)
	Approve(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	AddReaction(ctx context.Context, r *model.Reaction) error
}

type commentRepo struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepo{db: db} }

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepo) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Preload("Reactions").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) List(ctx context.Context, pendingOnly bool) ([]model.Comment, error) {
	var comments []model.Comment
	q := r.db.WithContext(ctx).Preload("Reactions").Order("created_at DESC")
	if pendingOnly {
		q = q.Where("is_approved = false")
	}
	err := q.Find(&comments).Error
	return comments, err
}

func (r *commentRepo) Approve(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).Update("is_approved", true).Error
}

func (r *commentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Reactions").Delete(&model.Comment{ID: id}).Error
}

func (r *commentRepo) AddReaction(ctx context.Context, reaction *model.Reaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

package repository

import (
	"context"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"gorm.io/gorm"
)

// VisitRepository is append-only: visits are created on every publication
// read and never updated or deleted.
type VisitRepository interface {
	Create(ctx context.Context, v *model.Visit) error
	CountByPublication(ctx context.Context, publicationID uint) (int64, error)
}

type visitRepo struct{ db *gorm.DB }

func NewVisitRepository(db *gorm.DB) VisitRepository { return &visitRepo{db: db} }

func (r *visitRepo) Create(ctx context.Context, v *model.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *visitRepo) CountByPublication(ctx context.Context, publicationID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Visit{}).
		Where("publication_id = ?", publicationID).Count(&total).Error
	return total, err
}

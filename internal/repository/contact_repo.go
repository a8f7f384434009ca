package repository

import (
	"context"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	CreateMessage(ctx context.Context, m *model.ContactMessage) error
	ListMessages(ctx context.Context) ([]model.ContactMessage, error)
	FindMessageByID(ctx context.Context, id uint) (*model.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) error
	ListSubjects(ctx context.Context) ([]model.ContactSubject, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) ContactRepository { return &contactRepo{db: db} }

func (r *contactRepo) CreateMessage(ctx context.Context, m *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contactRepo) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	var msgs []model.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

func (r *contactRepo) FindMessageByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", id).Update("is_read", true).Error
}

func (r *contactRepo) ListSubjects(ctx context.Context) ([]model.ContactSubject, error) {
	var subjects []model.ContactSubject
	err := r.db.WithContext(ctx).Order("id asc").Find(&subjects).Error
	return subjects, err
}

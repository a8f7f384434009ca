package repository

import (
	"context"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"gorm.io/gorm"
)

// PublicationRepository defines the data access contract for publications.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type PublicationRepository interface {
	Create(ctx context.Context, p *model.Publication) error
	// FindByID / FindBySlug preload tags, category, author and the approved
	// comments with their reactions (newest first).
	FindByID(ctx context.Context, id uint) (*model.Publication, error)
	FindBySlug(ctx context.Context, slug string) (*model.Publication, error)
	// FindBare loads the row alone — used by update/delete where relations
	// are re-resolved afterwards.
	FindBare(ctx context.Context, id uint) (*model.Publication, error)
	// List applies the query filters; categoryID is the already-resolved
	// category (nil = no category filter).
	List(ctx context.Context, f dto.PublicationFilter, categoryID *uint) ([]model.Publication, int64, error)
	Update(ctx context.Context, p *model.Publication) error
	// ReplaceTags swaps the whole tag-association set inside one transaction
	// (delete-all, recreate — set-replacement is the contract, not a diff).
	ReplaceTags(ctx context.Context, p *model.Publication, tags []model.Tag) error
	Delete(ctx context.Context, id uint) error

	// Per-publication annotation counts, batched to avoid N+1 on listings.
	CommentCounts(ctx context.Context, ids []uint) (map[uint]int64, error)
	VisitCounts(ctx context.Context, ids []uint) (map[uint]int64, error)
}

type publicationRepo struct{ db *gorm.DB }

func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepo{db: db}
}

func (r *publicationRepo) Create(ctx context.Context, p *model.Publication) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *publicationRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Category").
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = true").Order("created_at DESC")
		}).
		Preload("Comments.Reactions")
}

func (r *publicationRepo) FindByID(ctx context.Context, id uint) (*model.Publication, error) {
	var p model.Publication
	err := r.preloaded(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *publicationRepo) FindBySlug(ctx context.Context, slug string) (*model.Publication, error) {
	var p model.Publication
	err := r.preloaded(ctx).Where("slug = ?", slug).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *publicationRepo) FindBare(ctx context.Context, id uint) (*model.Publication, error) {
	var p model.Publication
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *publicationRepo) List(ctx context.Context, f dto.PublicationFilter, categoryID *uint) ([]model.Publication, int64, error) {
	var pubs []model.Publication
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Publication{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if f.TagID != 0 {
		q = q.Joins("JOIN publication_tags pt ON pt.publication_id = publications.id").
			Where("pt.tag_id = ?", f.TagID)
	}
	if f.Search != "" {
		// Plain substring containment, OR across the three text fields.
		// Case-sensitive on purpose — observed legacy behavior.
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR content LIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	err := q.Preload("Tags").Preload("Category").
		Order("created_at DESC").
		Limit(f.Limit).Offset(offset).
		Find(&pubs).Error
	return pubs, total, err
}

func (r *publicationRepo) Update(ctx context.Context, p *model.Publication) error {
	// Save skips zero-valued fields for maps but not structs; use explicit
	// column updates so a cleared CategoryID persists as NULL.
	return r.db.WithContext(ctx).Model(p).
		Select("title", "slug", "description", "content", "main_image",
			"video_thumbnail", "status", "category_id").
		Updates(map[string]interface{}{
			"title":           p.Title,
			"slug":            p.Slug,
			"description":     p.Description,
			"content":         p.Content,
			"main_image":      p.MainImage,
			"video_thumbnail": p.VideoThumbnail,
			"status":          p.Status,
			"category_id":     p.CategoryID,
		}).Error
}

func (r *publicationRepo) ReplaceTags(ctx context.Context, p *model.Publication, tags []model.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(p).Association("Tags").Replace(&tags)
	})
}

func (r *publicationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Tags", "Comments", "Visits").
		Delete(&model.Publication{ID: id}).Error
}

func (r *publicationRepo) CommentCounts(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return r.countBy(ctx, &model.Comment{}, "publication_id", ids)
}

func (r *publicationRepo) VisitCounts(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return r.countBy(ctx, &model.Visit{}, "publication_id", ids)
}

type countRow struct {
	ID    uint
	Total int64
}

func (r *publicationRepo) countBy(ctx context.Context, m interface{}, column string, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(m).
		Select(column+" AS id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ID] = row.Total
	}
	return counts, nil
}

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/auth"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/metrics"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"

	"gorm.io/gorm"
)

// VisitInfo carries the caller identity recorded with every publication read.
type VisitInfo struct {
	IPAddress string
	UserAgent string
}

// PublicationService orchestrates CRUD over publications: filtering,
// pagination, tag relation rewrites, visit recording and the Spanish
// response mapping.
type PublicationService interface {
	List(ctx context.Context, f dto.PublicationFilter) ([]dto.PublicationResponse, error)
	Get(ctx context.Context, idOrSlug string, visit VisitInfo) (dto.PublicationResponse, error)
	Create(ctx context.Context, req dto.CreatePublicationRequest, actor auth.Actor) (dto.PublicationResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdatePublicationRequest, actor auth.Actor) (dto.PublicationResponse, error)
	Delete(ctx context.Context, id uint, actor auth.Actor) (dto.DeleteConfirmation, error)
}

type publicationService struct {
	pubs       repository.PublicationRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	visits     repository.VisitRepository
}

func NewPublicationService(
	pubs repository.PublicationRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	visits repository.VisitRepository,
) PublicationService {
	return &publicationService{pubs: pubs, categories: categories, tags: tags, visits: visits}
}

func (s *publicationService) List(ctx context.Context, f dto.PublicationFilter) ([]dto.PublicationResponse, error) {
	var categoryID *uint
	if f.Category != "" {
		cat, err := s.categories.FindBySlug(ctx, f.Category)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown category slug yields an empty page, not an error.
				return []dto.PublicationResponse{}, nil
			}
			return nil, err
		}
		categoryID = &cat.ID
	}

	pubs, _, err := s.pubs.List(ctx, f, categoryID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(pubs))
	for i := range pubs {
		ids[i] = pubs[i].ID
	}
	commentCounts, err := s.pubs.CommentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	visitCounts, err := s.pubs.VisitCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PublicationResponse, 0, len(pubs))
	for i := range pubs {
		p := &pubs[i]
		result = append(result, dto.MapPublication(p, commentCounts[p.ID], visitCounts[p.ID]))
	}
	return result, nil
}

func (s *publicationService) Get(ctx context.Context, idOrSlug string, visit VisitInfo) (dto.PublicationResponse, error) {
	var p *model.Publication
	var err error
	if id, convErr := strconv.ParseUint(idOrSlug, 10, 32); convErr == nil {
		p, err = s.pubs.FindByID(ctx, uint(id))
	} else {
		p, err = s.pubs.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PublicationResponse{}, ErrNotFound
		}
		return dto.PublicationResponse{}, err
	}

	// Every read appends one visit row — no dedup, by contract.
	if err := s.visits.Create(ctx, &model.Visit{
		PublicationID: p.ID,
		IPAddress:     orUnknown(visit.IPAddress),
		UserAgent:     orUnknown(visit.UserAgent),
	}); err != nil {
		return dto.PublicationResponse{}, err
	}
	metrics.IncPublicationView()

	visitCount, err := s.visits.CountByPublication(ctx, p.ID)
	if err != nil {
		return dto.PublicationResponse{}, err
	}
	return dto.MapPublication(p, int64(len(p.Comments)), visitCount), nil
}

func (s *publicationService) Create(ctx context.Context, req dto.CreatePublicationRequest, actor auth.Actor) (dto.PublicationResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if err := s.ensureSlugFree(ctx, slug, 0); err != nil {
		return dto.PublicationResponse{}, err
	}

	p := &model.Publication{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Content:     req.Content,
		MainImage:   emptyToNil(req.MainImage),
		Status:      dto.NormalizeStatus(req.Status),
		AuthorID:    actor.ID,
	}
	// VideoThumbnail is recorded only when provided.
	if req.VideoThumbnail != nil && *req.VideoThumbnail != "" {
		p.VideoThumbnail = req.VideoThumbnail
	}

	if req.CategoryID != nil && *req.CategoryID != 0 {
		if _, err := s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.PublicationResponse{}, invalidf("la categoria %d no existe", *req.CategoryID)
			}
			return dto.PublicationResponse{}, err
		}
		p.CategoryID = req.CategoryID
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.resolveTags(ctx, req.TagIDs)
		if err != nil {
			return dto.PublicationResponse{}, err
		}
		p.Tags = tags
	}

	if err := s.pubs.Create(ctx, p); err != nil {
		return dto.PublicationResponse{}, err
	}
	return s.reload(ctx, p.ID)
}

func (s *publicationService) Update(ctx context.Context, id uint, req dto.UpdatePublicationRequest, actor auth.Actor) (dto.PublicationResponse, error) {
	p, err := s.pubs.FindBare(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PublicationResponse{}, ErrNotFound
		}
		return dto.PublicationResponse{}, err
	}
	if !auth.CanModify(actor, p.AuthorID) {
		return dto.PublicationResponse{}, ErrForbidden
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != p.Slug {
		if err := s.ensureSlugFree(ctx, *req.Slug, p.ID); err != nil {
			return dto.PublicationResponse{}, err
		}
		p.Slug = *req.Slug
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.MainImage != nil {
		p.MainImage = emptyToNil(req.MainImage)
	}
	if req.VideoThumbnail != nil {
		p.VideoThumbnail = emptyToNil(req.VideoThumbnail)
	}
	if req.Status != nil {
		p.Status = dto.NormalizeStatus(*req.Status)
	}

	// Category relation is cleared whenever categoryId is absent or zero.
	if req.CategoryID != nil && *req.CategoryID != 0 {
		if _, err := s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.PublicationResponse{}, invalidf("la categoria %d no existe", *req.CategoryID)
			}
			return dto.PublicationResponse{}, err
		}
		p.CategoryID = req.CategoryID
	} else {
		p.CategoryID = nil
	}

	// Tags are resolved before anything is written so an unknown id rejects
	// the whole request without leaving partial field changes behind.
	var tags []model.Tag
	if req.TagIDs != nil {
		tags, err = s.resolveTags(ctx, *req.TagIDs)
		if err != nil {
			return dto.PublicationResponse{}, err
		}
	}

	if err := s.pubs.Update(ctx, p); err != nil {
		return dto.PublicationResponse{}, err
	}

	// Wholesale set replacement when tagIds is supplied. Last writer wins on
	// the whole set; the transaction only prevents partial writes.
	if req.TagIDs != nil {
		if err := s.pubs.ReplaceTags(ctx, p, tags); err != nil {
			return dto.PublicationResponse{}, err
		}
	}
	return s.reload(ctx, p.ID)
}

func (s *publicationService) Delete(ctx context.Context, id uint, actor auth.Actor) (dto.DeleteConfirmation, error) {
	p, err := s.pubs.FindBare(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteConfirmation{}, ErrNotFound
		}
		return dto.DeleteConfirmation{}, err
	}
	if !auth.CanModify(actor, p.AuthorID) {
		return dto.DeleteConfirmation{}, ErrForbidden
	}
	if err := s.pubs.Delete(ctx, id); err != nil {
		return dto.DeleteConfirmation{}, err
	}
	return dto.DeleteConfirmation{Message: "Publicación eliminada"}, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *publicationService) reload(ctx context.Context, id uint) (dto.PublicationResponse, error) {
	p, err := s.pubs.FindByID(ctx, id)
	if err != nil {
		return dto.PublicationResponse{}, err
	}
	visitCount, err := s.visits.CountByPublication(ctx, id)
	if err != nil {
		return dto.PublicationResponse{}, err
	}
	return dto.MapPublication(p, int64(len(p.Comments)), visitCount), nil
}

func (s *publicationService) ensureSlugFree(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.pubs.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return invalidf("ya existe una publicación con el slug %q", slug)
	}
	return nil
}

func (s *publicationService) resolveTags(ctx context.Context, ids []uint) ([]model.Tag, error) {
	tags, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, invalidf("alguna etiqueta no existe")
	}
	return tags, nil
}

var slugReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

// Slugify derives a URL-safe slug from a title: lowercase, Spanish accents
// folded, everything outside [a-z0-9] collapsed to single hyphens.
func Slugify(title string) string {
	s := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(title)))
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

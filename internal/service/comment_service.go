package service

import (
	"context"
	"errors"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"

	"gorm.io/gorm"
)

// CommentService covers the public comment flow (create, react) and the
// dashboard moderation flow (list, approve, delete).
type CommentService interface {
	Create(ctx context.Context, publicationID uint, req dto.CreateCommentRequest) (dto.CommentResponse, error)
	List(ctx context.Context, pendingOnly bool) ([]dto.CommentResponse, error)
	Approve(ctx context.Context, id uint) (dto.CommentResponse, error)
	Delete(ctx context.Context, id uint) error
	AddReaction(ctx context.Context, commentID uint, req dto.AddReactionRequest) (dto.CommentResponse, error)
}

type commentService struct {
	comments repository.CommentRepository
	pubs     repository.PublicationRepository
}

func NewCommentService(comments repository.CommentRepository, pubs repository.PublicationRepository) CommentService {
	return &commentService{comments: comments, pubs: pubs}
}

func (s *commentService) Create(ctx context.Context, publicationID uint, req dto.CreateCommentRequest) (dto.CommentResponse, error) {
	if _, err := s.pubs.FindBare(ctx, publicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentResponse{}, ErrNotFound
		}
		return dto.CommentResponse{}, err
	}

	// New comments always start unapproved; a moderator flips the flag.
	c := &model.Comment{
		PublicationID: publicationID,
		AuthorName:    req.AuthorName,
		Content:       req.Content,
		IsApproved:    false,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return dto.CommentResponse{}, err
	}
	return dto.MapComment(c), nil
}

func (s *commentService) List(ctx context.Context, pendingOnly bool) ([]dto.CommentResponse, error) {
	comments, err := s.comments.List(ctx, pendingOnly)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, dto.MapComment(&comments[i]))
	}
	return result, nil
}

func (s *commentService) Approve(ctx context.Context, id uint) (dto.CommentResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return dto.CommentResponse{}, err
	}
	if err := s.comments.Approve(ctx, id); err != nil {
		return dto.CommentResponse{}, err
	}
	c, err := s.find(ctx, id)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	return dto.MapComment(c), nil
}

func (s *commentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id)
}

func (s *commentService) AddReaction(ctx context.Context, commentID uint, req dto.AddReactionRequest) (dto.CommentResponse, error) {
	c, err := s.find(ctx, commentID)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	if !c.IsApproved {
		return dto.CommentResponse{}, invalidf("el comentario aún no está aprobado")
	}
	if err := s.comments.AddReaction(ctx, &model.Reaction{CommentID: commentID, Emoji: req.Emoji}); err != nil {
		return dto.CommentResponse{}, err
	}
	c, err = s.find(ctx, commentID)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	return dto.MapComment(c), nil
}

func (s *commentService) find(ctx context.Context, id uint) (*model.Comment, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

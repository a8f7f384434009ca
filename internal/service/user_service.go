package service

import (
	"context"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/auth"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"
)

// UserService exposes the dashboard user listing. The listing is gated by
// the bootstrap-admin rule: Administrador role AND membership in the
// configured allow-list (legacy behavior, see auth.CanListUsers).
type UserService interface {
	List(ctx context.Context, actor auth.Actor) (dto.UserListResponse, error)
}

type userService struct {
	repo            repository.UserRepository
	bootstrapAdmins []uint
}

func NewUserService(repo repository.UserRepository, bootstrapAdmins []uint) UserService {
	return &userService{repo: repo, bootstrapAdmins: bootstrapAdmins}
}

func (s *userService) List(ctx context.Context, actor auth.Actor) (dto.UserListResponse, error) {
	if !auth.CanListUsers(actor, s.bootstrapAdmins) {
		return dto.UserListResponse{}, ErrForbidden
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return dto.UserListResponse{}, err
	}
	resp := dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, MapUser(&users[i]))
	}
	return resp, nil
}

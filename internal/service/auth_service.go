package service

import (
	"context"
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/config"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, invalidf("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidf("credenciales invalidas")
	}

	now := time.Now()
	if err := s.repo.TouchLastConnection(ctx, user.ID, now); err != nil {
		// Not worth failing the login over; the timestamp is informational.
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to record last connection")
	}
	user.LastConnection = &now

	return s.tokenPair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, invalidf("refresh token invalido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, invalidf("claims invalidos")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, invalidf("token mal formado")
	}

	user, err := s.repo.FindByID(ctx, uint(rawID))
	if err != nil {
		return nil, invalidf("usuario no encontrado")
	}
	return s.tokenPair(user)
}

func (s *authService) tokenPair(user *model.User) (*dto.LoginResponse, error) {
	access, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         MapUser(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"rol":      roleName,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// MapUser builds the public user shape. Shared with the user listing.
func MapUser(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		NombreCompleto: u.FullName,
		UltimaConexion: u.LastConnection,
		FechaRegistro:  u.RegisteredAt,
	}
	if u.Role != nil {
		resp.Rol = dto.RolSummary{ID: u.Role.ID, Nombre: u.Role.Name}
	}
	return resp
}

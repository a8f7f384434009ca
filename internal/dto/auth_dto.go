package dto

import "time"

// ── Request DTOs ─────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID             uint       `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	NombreCompleto string     `json:"nombre_completo"`
	Rol            RolSummary `json:"rol"`
	UltimaConexion *time.Time `json:"ultima_conexion"`
	FechaRegistro  time.Time  `json:"fecha_registro"`
}

type RolSummary struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

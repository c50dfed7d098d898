package auth

import (
	"certdesk/internal/application/auth/usecases"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Region   int    `json:"region" binding:"required"`
	Location string `json:"location" binding:"required,max=200"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Name:     r.Name,
		Password: r.Password,
		Region:   r.Region,
		Location: r.Location,
	}
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{
		Name:     r.Name,
		Password: r.Password,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r *RefreshTokenRequest) ToCommand() usecases.RefreshTokenCommand {
	return usecases.RefreshTokenCommand{
		RefreshToken: r.RefreshToken,
	}
}

// TokenResponse is the wire shape shared by login and refresh.
type TokenResponse struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func toTokenResponse(result *usecases.LoginResult) TokenResponse {
	return TokenResponse{
		UserID:       result.UserID,
		Name:         result.Name,
		Role:         result.Role,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}
}

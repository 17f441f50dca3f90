package presenter

import (
	authDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	response := &authDTO.UserResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Name:          u.Name,
		Timezone:      u.Timezone,
		CalendarReady: u.HasCalendarToken(),
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
	}

	if u.AvatarURL != nil {
		response.AvatarURL = *u.AvatarURL
	}
	if u.OAuthProvider != nil {
		response.OAuthProvider = *u.OAuthProvider
	}

	return response
}

// ToAuthResponse converts usecase AuthResponse to DTO AuthResponse
func ToAuthResponse(usecaseResp *auth.AuthResponse) *authDTO.AuthResponse {
	if usecaseResp == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken:  usecaseResp.AccessToken,
		RefreshToken: usecaseResp.RefreshToken,
		ExpiresIn:    usecaseResp.ExpiresIn,
		TokenType:    "Bearer",
		User:         ToUserResponse(usecaseResp.User),
	}
}

// ToRefreshTokenResponse converts usecase AuthResponse to DTO RefreshTokenResponse
func ToRefreshTokenResponse(usecaseResp *auth.AuthResponse) *authDTO.RefreshTokenResponse {
	if usecaseResp == nil {
		return nil
	}
	return &authDTO.RefreshTokenResponse{
		AccessToken: usecaseResp.AccessToken,
		ExpiresIn:   usecaseResp.ExpiresIn,
		TokenType:   "Bearer",
	}
}

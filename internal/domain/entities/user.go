package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user in the system. Registered users form the
// directory consulted when resolving meeting participants by email.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email    string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	IsActive bool      `json:"is_active" gorm:"default:true;not null"`

	// OAuth fields
	OAuthProvider     *string `json:"oauth_provider,omitempty" gorm:"column:oauth_provider;type:varchar(50);index:idx_oauth"`
	OAuthID           *string `json:"oauth_id,omitempty" gorm:"column:oauth_id;type:varchar(255);index:idx_oauth"`
	OAuthRefreshToken *string `json:"-" gorm:"column:oauth_refresh_token;type:text"` // Never expose in JSON

	// Profile
	AvatarURL *string `json:"avatar_url,omitempty" gorm:"type:varchar(500)"`
	Timezone  string  `json:"timezone" gorm:"type:varchar(50);default:'UTC';not null"`

	LastLoginAt  *time.Time `json:"last_login_at,omitempty" gorm:"type:timestamp"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty" gorm:"type:timestamp"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewOAuthUser creates a new user from an OAuth sign-in
func NewOAuthUser(email, name, provider, oauthID string) *User {
	now := time.Now()
	return &User{
		Email:         email,
		Name:          name,
		IsActive:      true,
		OAuthProvider: &provider,
		OAuthID:       &oauthID,
		Timezone:      "UTC",
		LastLoginAt:   &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateLastLogin updates the last login timestamp
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastActiveAt = &now
}

// HasCalendarToken reports whether the user granted a calendar-capable OAuth
// refresh token during sign-in.
func (u *User) HasCalendarToken() bool {
	return u.OAuthRefreshToken != nil && *u.OAuthRefreshToken != ""
}

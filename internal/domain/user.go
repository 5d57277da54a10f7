package domain

import "time"

type UserRole string

const (
	UserRoleArtist UserRole = "artist"
	UserRoleVenue  UserRole = "venue"
	UserRoleFan    UserRole = "fan"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleArtist, UserRoleVenue, UserRoleFan:
		return true
	}
	return false
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	Role           UserRole  `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	DisplayName    string
	Role           UserRole
	TelegramChatID *int64
}

type SuggestedUser struct {
	User      User `json:"user"`
	Followers int  `json:"followers"`
}

package entity

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFilters: Search matches full name or email; Role "all"/"" disables
// the role filter.
type UserFilters struct {
	Search  string `json:"search"`
	Role    string `json:"role"`
	SortBy  string `json:"sort_by"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type UserList struct {
	Users []*UserProfile `json:"users"`
	Total int64          `json:"total"`
}

type UserFields struct {
	Email    *string
	FullName *string
	Phone    *string
	Bio      *string
	Role     *Role
}

package entity

import "time"

type PostStatus string

const (
	PostActive  PostStatus = "active"
	PostFlagged PostStatus = "flagged"
	PostHidden  PostStatus = "hidden"
)

// PostAuthor is the slice of a user profile a post listing needs.
type PostAuthor struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// GroupRef is the slice of a group a post listing needs.
type GroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CommunityPost struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	GroupID   string      `json:"group_id,omitempty"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"image_url,omitempty"`
	Status    PostStatus  `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Author    *PostAuthor `json:"author,omitempty"`
	Group     *GroupRef   `json:"group,omitempty"`
}

type PostFilters struct {
	Search  string `json:"search"`
	GroupID string `json:"group_id"`
	Status  string `json:"status"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type PostList struct {
	Posts []*CommunityPost `json:"posts"`
	Total int64            `json:"total"`
}

type CommunityGroup struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url,omitempty"`
	CreatedBy   string      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Creator     *PostAuthor `json:"creator,omitempty"`
}

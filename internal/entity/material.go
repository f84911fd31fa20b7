package entity

import "time"

type MaterialType string

const (
	MaterialBook       MaterialType = "book"
	MaterialArticle    MaterialType = "article"
	MaterialStudyGuide MaterialType = "study_guide"
)

// Material is a downloadable study resource (book, article, study guide):
// a document plus a cover thumbnail.
type Material struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Type         MaterialType `json:"type"`
	Author       string       `json:"author"`
	Description  string       `json:"description"`
	Status       Status       `json:"status"`
	ContentURL   string       `json:"content_url"`
	ThumbnailURL string       `json:"thumbnail_url"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type MaterialFilters struct {
	Search  string `json:"search"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	SortBy  string `json:"sort_by"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type MaterialList struct {
	Materials []*Material `json:"materials"`
	Total     int64       `json:"total"`
}

type MaterialFields struct {
	Title       *string
	Type        *MaterialType
	Author      *string
	Description *string
	Status      *Status
}

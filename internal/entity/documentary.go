package entity

import "time"

type Documentary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"` // minutes
	Status       Status    `json:"status"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DocumentaryFilters struct {
	Search  string `json:"search"`
	Status  string `json:"status"`
	SortBy  string `json:"sort_by"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type DocumentaryList struct {
	Documentaries []*Documentary `json:"documentaries"`
	Total         int64          `json:"total"`
}

type DocumentaryFields struct {
	Title       *string
	Description *string
	Duration    *int
	Status      *Status
}

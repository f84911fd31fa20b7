package entity

import "time"

type Sermon struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Speaker      string    `json:"speaker"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"` // minutes
	DatePreached time.Time `json:"date_preached"`
	Featured     bool      `json:"featured"`
	Status       Status    `json:"status"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	AudioURL     string    `json:"audio_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SermonFilters narrows and pages the sermon list. Search matches title or
// speaker, status "all"/"" means no status filter.
type SermonFilters struct {
	Search  string `json:"search"`
	Status  string `json:"status"`
	SortBy  string `json:"sort_by"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type SermonList struct {
	Sermons []*Sermon `json:"sermons"`
	Total   int64     `json:"total"`
}

// SermonFields carries the scalar fields of a create or update. Nil members
// of an update are left untouched; file URLs are never set here directly,
// they come out of the storage uploads.
type SermonFields struct {
	Title        *string
	Speaker      *string
	Description  *string
	Duration     *int
	DatePreached *time.Time
	Featured     *bool
	Status       *Status
}

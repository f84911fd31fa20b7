package entity

import "time"

type PresentationType string

const (
	PresentationPodcast           PresentationType = "podcast"
	PresentationFamilyFoundations PresentationType = "family_foundations"
	PresentationSpiritualHealth   PresentationType = "spiritual_health"
	PresentationBibleStudies      PresentationType = "bible_studies"
)

type Presentation struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Type         PresentationType `json:"type"`
	Speaker      string           `json:"speaker"`
	Description  string           `json:"description"`
	Duration     int              `json:"duration"` // minutes
	Status       Status           `json:"status"`
	VideoURL     string           `json:"video_url"`
	ThumbnailURL string           `json:"thumbnail_url"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// PresentationFilters: Type "all"/"" disables the type filter.
type PresentationFilters struct {
	Search  string `json:"search"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	SortBy  string `json:"sort_by"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type PresentationList struct {
	Presentations []*Presentation `json:"presentations"`
	Total         int64           `json:"total"`
}

type PresentationFields struct {
	Title       *string
	Type        *PresentationType
	Speaker     *string
	Description *string
	Duration    *int
	Status      *Status
}

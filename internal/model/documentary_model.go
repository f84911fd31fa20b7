package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentaryModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Duration     int       `gorm:"not null" json:"duration"`
	Status       string    `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	VideoURL     string    `gorm:"type:varchar(500);not null" json:"video_url"`
	ThumbnailURL string    `gorm:"type:varchar(500);not null" json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DocumentaryModel) TableName() string {
	return "documentaries"
}

func (m *DocumentaryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

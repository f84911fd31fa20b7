package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Type         string    `gorm:"type:varchar(50);not null;index" json:"type"`
	Author       string    `gorm:"type:varchar(100)" json:"author"`
	Description  string    `gorm:"type:text" json:"description"`
	Status       string    `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	ContentURL   string    `gorm:"type:varchar(500);not null" json:"content_url"`
	ThumbnailURL string    `gorm:"type:varchar(500);not null" json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MaterialModel) TableName() string {
	return "spiritual_materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

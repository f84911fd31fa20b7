package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SermonModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Speaker      string    `gorm:"type:varchar(100);not null" json:"speaker"`
	Description  string    `gorm:"type:text" json:"description"`
	Duration     int       `gorm:"not null" json:"duration"`
	DatePreached time.Time `json:"date_preached"`
	Featured     bool      `gorm:"default:false" json:"featured"`
	Status       string    `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	VideoURL     string    `gorm:"type:varchar(500);not null" json:"video_url"`
	ThumbnailURL string    `gorm:"type:varchar(500);not null" json:"thumbnail_url"`
	AudioURL     string    `gorm:"type:varchar(500)" json:"audio_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SermonModel) TableName() string {
	return "sermons"
}

func (m *SermonModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityPostModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	GroupID   *string   `gorm:"type:uuid;index" json:"group_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	Status    string    `gorm:"type:varchar(20);default:'active';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CommunityPostModel) TableName() string {
	return "community_posts"
}

func (m *CommunityPostModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type CommunityGroupModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	CreatedBy   string    `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CommunityGroupModel) TableName() string {
	return "community_groups"
}

func (m *CommunityGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

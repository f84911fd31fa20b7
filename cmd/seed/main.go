package main

import (
	"fmt"
	"time"

	"grace-media/internal/model"
	"grace-media/pkg/config"
	"grace-media/pkg/database"
	"grace-media/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.UserProfileModel{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Admin user already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("change-me-now"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.UserProfileModel{
		Email:        "admin@gracemedia.local",
		PasswordHash: string(hash),
		FullName:     "Site Administrator",
		Role:         "admin",
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Info("Created admin user %s", admin.Email)

	sermons := []*model.SermonModel{
		{
			Title:        "Walking in Grace",
			Speaker:      "Pastor David Mwangi",
			Description:  "An introduction to living under grace rather than law.",
			Duration:     42,
			DatePreached: time.Now().AddDate(0, 0, -14),
			Featured:     true,
			Status:       "published",
			VideoURL:     "https://example.com/sermons/videos/walking-in-grace.mp4",
			ThumbnailURL: "https://example.com/sermons/thumbnails/walking-in-grace.jpg",
		},
		{
			Title:        "The Power of Prayer",
			Speaker:      "Pastor Sarah Okafor",
			Description:  "Why persistent prayer changes things.",
			Duration:     38,
			DatePreached: time.Now().AddDate(0, 0, -7),
			Status:       "draft",
			VideoURL:     "https://example.com/sermons/videos/power-of-prayer.mp4",
			ThumbnailURL: "https://example.com/sermons/thumbnails/power-of-prayer.jpg",
		},
	}
	for _, sermon := range sermons {
		if err := db.Create(sermon).Error; err != nil {
			return err
		}
	}
	log.Info("Created %d sample sermons", len(sermons))

	group := &model.CommunityGroupModel{
		Name:        "Prayer Warriors",
		Description: "Daily prayer requests and encouragement.",
		CreatedBy:   admin.ID,
	}
	if err := db.Create(group).Error; err != nil {
		return err
	}
	log.Info("Created sample community group %s", group.Name)

	return nil
}

package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lifediary/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	// .env is optional; deployments set POSTGRES_URL directly.
	_ = godotenv.Load()

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := AutoMigrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.QuestionsGroup{},
		&db_models.Question{},
		&db_models.Choice{},
		&db_models.DiaryUser{},
		&db_models.UsersCompletedPoll{},
		&db_models.UsersAnswer{},
		&db_models.UsersTimeline{},
		&db_models.TimelineEventCategory{},
		&db_models.TimelineEventTemplate{},
		&db_models.UsersTimelineEvent{},
		&db_models.EventReactionCategory{},
		&db_models.UsersTimelineEventReaction{},
		&db_models.JourneyType{},
		&db_models.JourneyCountry{},
		&db_models.Journey{},
		&db_models.EntryTag{},
		&db_models.EntryCategory{},
		&db_models.Entry{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

package database

import (
	"log"

	"github.com/team-dbase/dbase-ai/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: keeps the Postgres schema in sync with the models
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.Company{},
		&models.JobPosting{},
		&models.User{},
		&models.Token{},
		&models.UserCompany{},
		&models.Experience{},
		&models.ApplicationStatus{},
		&models.PresentCompany{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

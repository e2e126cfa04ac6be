package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/assemble-platform/api-go/models"
)

// OpenDatabase opens a GORM connection. DATABASE_URL takes precedence and
// selects the dialector by prefix (postgres:// or sqlite://); otherwise the
// DSN is assembled from the discrete DB_* environment variables.
func OpenDatabase() (*gorm.DB, error) {
	var dialector gorm.Dialector

	dbURL := os.Getenv("DATABASE_URL")
	switch {
	case strings.HasPrefix(dbURL, "postgres://"):
		dialector = postgres.Open(dbURL)
	case strings.HasPrefix(dbURL, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://"))
	case dbURL != "":
		return nil, fmt.Errorf("unsupported DATABASE_URL prefix: %s", dbURL)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// InitDB opens the database and runs migrations, failing hard on error.
func InitDB() *gorm.DB {
	db, err := OpenDatabase()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	return db
}

// Migrate auto-migrates every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectApplication{},
		&models.HackathonPost{},
		&models.HackathonApplication{},
		&models.ResearchPaper{},
		&models.Report{},
	)
}

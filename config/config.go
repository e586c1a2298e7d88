package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect loads .env, opens the database and runs pending migrations.
func Connect() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := Migrations(db); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	DB = db
	return db
}

package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"facilpay-api/config"
	"facilpay-api/models/payment"
	"facilpay-api/models/user"
)

// InitDB opens the Postgres connection and runs migrations and indexing.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUsername, cfg.DBPassword, cfg.DBDatabase, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&user.User{}, &payment.Payment{}); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return nil, err
	}

	return db, nil
}

// createIndexes creates additional indexes for better performance.
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)",
		"CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at)",
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

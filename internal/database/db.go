package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-invoice-maker/internal/config"
	"go-invoice-maker/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 5

// Connect opens a SQL database with gorm and syncs the invoice schema.
// MySQL may still be starting when we come up, so we retry a few times.
func Connect(driver, dsn string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported SQL driver %q", driver)
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/%d)", i+1, connectAttempts)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to %s after %d attempts: %w", driver, connectAttempts, err)
	}
	log.Printf("Connected to %s", driver)

	if err := db.AutoMigrate(&models.Invoice{}, &models.LineItem{}); err != nil {
		return nil, fmt.Errorf("migrate invoice schema: %w", err)
	}
	log.Println("Database schema synced")

	return db, nil
}

// Open builds the Store selected by cfg.DBDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.DBDriver == "firestore" {
		store, err := NewFirestoreStore(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile, cfg.InvoiceCollection)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	db, err := Connect(cfg.DBDriver, cfg.DBDSN, cfg.GinMode == "debug")
	if err != nil {
		return nil, err
	}
	return NewGormStore(db), nil
}

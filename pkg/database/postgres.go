package database

import (
	"log"

	"github.com/meetcal/scheduling-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Host{},
		&models.EventType{},
		&models.AvailabilityWindow{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: at most one confirmed booking per (event type, start time).
	// Cancelled rows fall out of the index, so a cancelled slot is rebookable.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot
		ON bookings (event_type_id, start_time)
		WHERE status = 'confirmed'
	`)

	return db
}

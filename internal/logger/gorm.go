package logger

import (
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// Gorm returns a gorm logger that writes through the db component entry.
// Record-not-found errors are expected lookups and are not logged.
func Gorm() gormlogger.Interface {
	return gormlogger.New(DB(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

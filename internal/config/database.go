package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the shared gorm handle opened by InitDB.
var DB *gorm.DB

// InitDB opens the database selected by DB_DRIVER.
func InitDB(s Settings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch s.DBDriver {
	case "postgres":
		dialector = postgres.Open(s.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(s.DBDSN)
	default:
		dialector = mysql.Open(s.DBDSN)
	}

	logLevel := gormlogger.Warn
	if s.Env == "production" {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", s.DBDriver, err)
	}
	DB = db

	Logger.Info("Database connected", zap.String("driver", s.DBDriver))
	return db, nil
}

// CloseDB closes the pool behind DB.
func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

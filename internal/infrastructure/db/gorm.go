package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// duplicate-key and similar driver errors surface as gorm
		// sentinels (gorm.ErrDuplicatedKey) on both drivers
		TranslateError: true,
	}
}

// OpenMySQL connects the production backend and tunes the pool.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: mysql connected")
	return db, nil
}

// OpenSQLite opens a file-backed (or :memory:) database for development.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, err
	}
	log.Printf("gorm: sqlite open at %s", path)
	return db, nil
}

package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loandesk-backend/internal/adapter/http"
	mw "loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/adapter/repository/gormstore"
	"loandesk-backend/internal/adapter/repository/memory"
	"loandesk-backend/internal/config"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/internal/infrastructure/cache"
	"loandesk-backend/internal/infrastructure/db"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	h := httpadp.NewHandler(store)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.Open(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	httpadp.RegisterRoutes(e, h)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (storage driver: %s)", addr, cfg.StorageDriver())
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStorage constructs the one backend the process will use. Callers of
// the storage contract never branch on this choice again.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver() {
	case config.DriverMySQL:
		gdb, err := db.OpenMySQL(cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		s := gormstore.New(gdb)
		if err := s.Migrate(); err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s := gormstore.New(gdb)
		if err := s.Migrate(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		log.Println("no database configured, using seeded in-memory storage")
		return memory.New(), nil
	}
}

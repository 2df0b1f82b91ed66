package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lshigami/edulink/config"
	"github.com/lshigami/edulink/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Mode is the persistence mode the learning flow runs in.
type Mode int

const (
	ModeAvailable Mode = iota
	// ModeDegraded means the database could not be reached. Learning content
	// is still served, attempts get transient identifiers.
	ModeDegraded
)

func (m Mode) String() string {
	if m == ModeAvailable {
		return "available"
	}
	return "degraded"
}

// ErrUnavailable is returned by Persistence when no database is reachable.
var ErrUnavailable = errors.New("database unavailable")

// PersistenceStatus is the single place connection state is queried.
type PersistenceStatus interface {
	Mode(ctx context.Context) Mode
}

// Persistence owns the gorm handle. DB is nil when the initial connection
// failed; the process keeps running in degraded mode.
type Persistence struct {
	DB *gorm.DB
}

const pingTimeout = 2 * time.Second

// NewDatabase connects using the configured driver. A failed connection is
// logged and yields a degraded Persistence instead of an error.
func NewDatabase(cfg *config.Config) *Persistence {
	db, err := open(cfg.Database)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Database connection failed, running without database")
		return &Persistence{}
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connected")
	return &Persistence{DB: db}
}

// NewFromDB wraps an existing handle, used by tests and the migrate command.
func NewFromDB(db *gorm.DB) *Persistence {
	return &Persistence{DB: db}
}

func open(cfg config.Database) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "postgres", "":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Mode pings the database; any failure reports degraded.
func (p *Persistence) Mode(ctx context.Context) Mode {
	if p == nil || p.DB == nil {
		return ModeDegraded
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return ModeDegraded
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Msg("Database ping failed")
		return ModeDegraded
	}
	return ModeAvailable
}

// Gorm returns the handle or ErrUnavailable.
func (p *Persistence) Gorm() (*gorm.DB, error) {
	if p == nil || p.DB == nil {
		return nil, ErrUnavailable
	}
	return p.DB, nil
}

func (p *Persistence) Close() error {
	if p == nil || p.DB == nil {
		return nil
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates the tables for all models.
func (p *Persistence) AutoMigrate() error {
	db, err := p.Gorm()
	if err != nil {
		log.Warn().Msg("Skipping migrations, database unavailable")
		return nil
	}
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&model.Attempt{},
		&model.QuizAttempt{},
		&model.TopicHistory{},
		&model.User{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

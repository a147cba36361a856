package database

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"verde/internal/logger"
	"verde/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Models lists every table the service owns. SQLite databases are migrated
// from these directly; Postgres uses the SQL files in migrations/.
var Models = []any{
	&models.StateEntry{},
	&models.AuditLog{},
	&models.NetWorthSnapshot{},
}

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database selected by config.Driver.
func NewManager(config *Config) (*Manager, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	default:
		dialector = sqlite.Open(config.Path)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// One writer keeps SQLite from reporting "database is locked".
		sqlDB.SetMaxOpenConns(1)
	}

	return &Manager{db: db, config: config}, nil
}

// Migrate brings the schema up to date for the configured driver.
func (m *Manager) Migrate() error {
	if m.config.Driver != DriverPostgres {
		logger.Get().Info("Auto-migrating SQLite schema...")
		if err := m.db.AutoMigrate(Models...); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
		return nil
	}
	return m.RunMigrations()
}

// Migrator returns a golang-migrate instance over the embedded SQL files.
// Callers must Close it.
func (m *Manager) Migrator() (*migrate.Migrate, error) {
	if m.config.Driver != DriverPostgres {
		return nil, fmt.Errorf("SQL migrations require the %s driver, got %s", DriverPostgres, m.config.Driver)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.config.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// RunMigrations applies pending SQL migrations.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := m.Migrator()
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// CloseMigrator closes both ends of a migrate instance, logging failures.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

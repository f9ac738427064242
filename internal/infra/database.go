package infra

import (
	"fmt"
	"strings"

	"inventario/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection and creates the schema.
// A postgres:// (or postgresql://) DSN selects the pgx-backed Postgres driver;
// anything else is treated as a SQLite file path or URI.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Open connects without touching the schema.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	sqliteDB := !isPostgres(dsn)
	if sqliteDB {
		dialector = sqlite.Open(sqliteDSN(dsn))
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if sqliteDB {
		// SQLite allows one writer; a single connection also keeps
		// in-memory databases alive for the life of the pool.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}
	return db, nil
}

// Migrate creates or updates the five tables. AutoMigrate only adds missing
// tables, columns and indexes, so running it on every start never drops data.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.StockItem{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleLine{},
		&model.RestockEvent{},
	)
}

// sqliteDSN enables foreign keys through the DSN so that every connection the
// pool opens enforces them, not only the first one.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

package config

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"time"

	sqlitedriver "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"         yaml:"driver"`
	Host         string `mapstructure:"host"           yaml:"host"`
	Port         string `mapstructure:"port"           yaml:"port"`
	User         string `mapstructure:"user"           yaml:"user"`
	Password     string `mapstructure:"password"       yaml:"password"`
	Name         string `mapstructure:"name"           yaml:"name"`
	SSLMode      string `mapstructure:"sslmode"        yaml:"sslmode"`
	Path         string `mapstructure:"path"           yaml:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	LogLevel     string `mapstructure:"log_level"      yaml:"log_level"`
}

func (cfg DatabaseConfig) dialector() (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres, "":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case DriverMySQL:
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
		)
		return mysql.Open(dsn), nil
	case DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite path is required")
		}
		if err := registerSQLiteFunctions(); err != nil {
			return nil, err
		}
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SQLiteLower names a LOWER replacement registered on the SQLite driver.
// The built-in LOWER only folds ASCII letters.
const SQLiteLower = "unicode_lower"

var (
	sqliteFuncsOnce sync.Once
	sqliteFuncsErr  error
)

func registerSQLiteFunctions() error {
	sqliteFuncsOnce.Do(func() {
		sqliteFuncsErr = sqlitedriver.RegisterDeterministicScalarFunction(SQLiteLower, 1, unicodeLower)
	})
	return sqliteFuncsErr
}

func unicodeLower(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// sqliteDSN turns foreign key enforcement on, which SQLite leaves off by default.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// GormLogLevel maps log_level onto gorm's levels. Unknown values are silent.
func (cfg DatabaseConfig) GormLogLevel() logger.LogLevel {
	return gormLogLevel(cfg.LogLevel)
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	return OpenDatabase(cfg, logger.Default.LogMode(cfg.GormLogLevel()))
}

// OpenDatabase is InitDatabase with SQL logging sent to log.
func OpenDatabase(cfg DatabaseConfig, log logger.Interface) (*gorm.DB, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: log,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if strings.EqualFold(cfg.Driver, DriverSQLite) {
		// SQLite only supports one writer, and every connection to an
		// in-memory database would see its own empty schema.
		maxOpen = 1
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetMaxIdleConns(maxOpen)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"todolist/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case DriverMySQL, "":
		return connect(DriverMySQL, mysqlDSN(conf))
	case DriverPostgres:
		if conf.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
		return connect(DriverPostgres, conf.DatabaseURL)
	case DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

// ConnectSQLite opens a SQLite database. ":memory:" gives a private
// in-memory database.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := connect(DriverSQLite, path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	// Every new connection to :memory: would open a separate database.
	db.SetMaxOpenConns(1)
	return db, nil
}

func connect(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

func mysqlDSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&loc=UTC"
	}

	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}

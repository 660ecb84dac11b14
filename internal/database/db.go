// Package database provides the MySQL connection for the analysis and
// vocabulary stores.
package database

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/tweetlex/tweetlex/internal/config"
)

// Open opens a MySQL connection pool using the provided config.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// dsn renders the driver DSN. The connection is pinned to utf8mb4 so CJK
// lemmas and Korean translations survive the round trip, and multi
// statements stay enabled for the embedded migration scripts.
func dsn(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	mysqlCfg.Collation = "utf8mb4_unicode_ci"
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}

	params := map[string]string{"charset": "utf8mb4"}
	for key, value := range cfg.Params {
		params[key] = value
	}
	mysqlCfg.Params = params

	return mysqlCfg.FormatDSN()
}

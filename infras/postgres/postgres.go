package postgres

import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"roombook/config"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection pairs a read and a write pool. Repositories issue SELECTs on
// Read and mutations on Write, so the two can point at a replica and a
// primary without touching query code.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", *config, config.DB.Postgres.Read),
		Write: connect("write", *config, config.DB.Postgres.Write),
	}
}

func databaseName(config config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

type endpoint = struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// connect dials the endpoint with retries so the service survives a database
// that comes up slightly later than the app container.
func connect(role string, config config.Config, ep endpoint) *sqlx.DB {
	dbName := databaseName(config, ep.Name)
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		ep.Username,
		ep.Password,
		net.JoinHostPort(ep.Host, ep.Port),
		dbName,
		ep.SSLMode,
	)

	for attempt := range config.DB.Postgres.MaxRetry {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)

			log.Info().
				Str("role", role).
				Str("host", ep.Host).
				Str("dbName", dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", role).
			Str("host", ep.Host).
			Str("dbName", dbName).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}

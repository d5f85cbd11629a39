package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	envDevelopment = "development"

	// devJWTSecret is only ever used when SERVER_ENV=development and no
	// JWT_SECRET is configured. Any other environment refuses to start
	// without an explicit secret.
	devJWTSecret = "dev-secret-change-me-please-32-bytes-minimum-123456"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"roombook"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-API-Key"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE" default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"60"`
	} `envconfig:"CACHE"`

	JWT struct {
		Secret    string `envconfig:"SECRET"`
		Issuer    string `envconfig:"ISSUER" default:"RoomBookingAPI"`
		Audience  string `envconfig:"AUDIENCE" default:"RoomBookingClient"`
		ExpireMin int    `envconfig:"EXPIRE_MIN" default:"120"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"5"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == envDevelopment
}

// validate applies the JWT secret policy: development gets a fallback,
// everything else fails hard on a missing secret.
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("JWT_SECRET must be set outside the development environment")
		}

		log.Warn().Msg("JWT_SECRET not set, using development fallback secret")
		c.JWT.Secret = devJWTSecret
	}

	return nil
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
			err = nil
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if err = envconfig.Process("", &conf); err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if err = conf.validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid configuration")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

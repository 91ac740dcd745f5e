package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	PictureStoreLocal = "local"
	PictureStoreGCS   = "gcs"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME,required"`
	Environment string `env:"APP_ENV,required"`
	HTTPPort    string `env:"HTTP_PORT,required"`
	SeedDemo    bool   `env:"SEED_DEMO" envDefault:"false"`
}

type DatabaseConfig struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout        time.Duration `env:"DB_CONNECT_TIMEOUT"`
	PoolMaxConns          int32         `env:"DB_POOL_MAX_CONNS"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS"`
	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD"`

	RunMigrations bool `env:"DB_RUN_MIGRATIONS" envDefault:"true"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type JWTConfig struct {
	AccessSecret    string        `env:"JWT_ACCESS_SECRET,required"`
	AccessExpiresIn time.Duration `env:"JWT_ACCESS_EXPIRES_IN" envDefault:"15m"`
	Issuer          string        `env:"JWT_ISSUER" envDefault:"profile-service"`
}

type StorageConfig struct {
	PictureStore string `env:"PICTURE_STORE" envDefault:"local"`
	PictureDir   string `env:"PICTURE_DIR" envDefault:"./uploads/pictures"`
	GCSBucket    string `env:"PICTURE_GCS_BUCKET"`
	GCSCredsFile string `env:"PICTURE_GCS_CREDENTIALS_FILE"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid configuration")
)

// Load reads an optional .env file and then parses the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, missingEnv(err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadJWT reads only the token settings, for tools that sign tokens
// without running the service.
func LoadJWT() (JWTConfig, error) {
	_ = godotenv.Load()
	return ParseJWT()
}

func ParseJWT() (JWTConfig, error) {
	cfg, err := env.ParseAs[JWTConfig]()
	if err != nil {
		return JWTConfig{}, missingEnv(err)
	}
	if cfg.AccessExpiresIn <= 0 {
		return JWTConfig{}, fmt.Errorf("%w: JWT_ACCESS_EXPIRES_IN must be positive", errInvalidConfig)
	}
	return cfg, nil
}

func missingEnv(err error) error {
	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		var missing []string
		for _, e := range aggErr.Errors {
			var req env.EnvVarIsNotSetError
			if errors.As(e, &req) {
				missing = append(missing, req.Key)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
		}
	}
	return err
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case StoreDriverPostgres:
		if strings.TrimSpace(c.Database.DBHost) == "" || strings.TrimSpace(c.Database.DBName) == "" {
			return fmt.Errorf("%w: postgres driver needs DB_HOST and DB_NAME", errInvalidConfig)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", errInvalidConfig, c.Database.Driver)
	}

	switch c.Storage.PictureStore {
	case PictureStoreLocal:
		if strings.TrimSpace(c.Storage.PictureDir) == "" {
			return fmt.Errorf("%w: PICTURE_DIR is empty", errInvalidConfig)
		}
	case PictureStoreGCS:
		if strings.TrimSpace(c.Storage.GCSBucket) == "" {
			return fmt.Errorf("%w: gcs picture store needs PICTURE_GCS_BUCKET", errInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown PICTURE_STORE %q", errInvalidConfig, c.Storage.PictureStore)
	}

	if c.JWT.AccessExpiresIn <= 0 {
		return fmt.Errorf("%w: JWT_ACCESS_EXPIRES_IN must be positive", errInvalidConfig)
	}
	return nil
}

func (c Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.App.Environment))
	return env == "prod" || env == "production"
}

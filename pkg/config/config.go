package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "DIRECTORY_DB_DSN"
	EnvDBHost = "DIRECTORY_DB_HOST"
	EnvDBUser = "DIRECTORY_DB_USER"
	EnvDBName = "DIRECTORY_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	APIAuth       APIAuthConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DIRECTORY_APP_ENV" required:"true"`
	Port         string `envconfig:"DIRECTORY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DIRECTORY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DIRECTORY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DIRECTORY_DB_DSN"`
	Driver string `envconfig:"DIRECTORY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DIRECTORY_DB_HOST"`
	LegacyPort     int    `envconfig:"DIRECTORY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DIRECTORY_DB_USER"`
	LegacyPassword string `envconfig:"DIRECTORY_DB_PASSWORD"`
	LegacyName     string `envconfig:"DIRECTORY_DB_NAME"`
	LegacySSLMode  string `envconfig:"DIRECTORY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DIRECTORY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DIRECTORY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DIRECTORY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DIRECTORY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DIRECTORY_REDIS_URL"`
	Address      string        `envconfig:"DIRECTORY_REDIS_ADDR"`
	Password     string        `envconfig:"DIRECTORY_REDIS_PASSWORD"`
	DB           int           `envconfig:"DIRECTORY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DIRECTORY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DIRECTORY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DIRECTORY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DIRECTORY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DIRECTORY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"DIRECTORY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"DIRECTORY_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"DIRECTORY_JWT_EXPIRATION_MINUTES" default:"60"`
}

// APIAuthConfig holds the single configured identity the token endpoint
// verifies against. The password is stored as an Argon2id hash string.
type APIAuthConfig struct {
	Username     string `envconfig:"DIRECTORY_API_USERNAME" required:"true"`
	PasswordHash string `envconfig:"DIRECTORY_API_PASSWORD_HASH" required:"true"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"DIRECTORY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"DIRECTORY_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"DIRECTORY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DIRECTORY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // Embedded zone database for api.timezone.

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Postgres  *PostgresConfig  `mapstructure:"postgres"`
	Redis     *RedisConfig     `mapstructure:"redis"`
	Storage   *StorageConfig   `mapstructure:"storage"`
	RateLimit *RateLimitConfig `mapstructure:"rate_limit"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTExpiration      time.Duration `mapstructure:"jwt_expiration"`
	Timezone           string        `mapstructure:"timezone"`
	LogLevel           string        `mapstructure:"log_level"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
	TimeZone string `mapstructure:"timezone"`
}

// RedisConfig is optional. An empty Addr disables redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type StorageConfig struct {
	Driver   string    `mapstructure:"driver"`
	TempDir  string    `mapstructure:"temp_dir"`
	LocalDir string    `mapstructure:"local_dir"`
	S3       *S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket       string `mapstructure:"bucket"`
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	Prefix       string `mapstructure:"prefix"`
	PublicURL    string `mapstructure:"public_url"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.jwt_expiration", 24*time.Hour)
	v.SetDefault("api.timezone", "UTC")
	v.SetDefault("api.log_level", "info")
	v.SetDefault("api.shutdown_timeout", 10*time.Second)

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "evote")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.timezone", "UTC")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.driver", StorageLocal)
	v.SetDefault("storage.temp_dir", "./temp")
	v.SetDefault("storage.local_dir", "./uploads")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")
	v.SetDefault("storage.s3.prefix", "candidates/")
	v.SetDefault("storage.s3.public_url", "")
	v.SetDefault("storage.s3.use_path_style", false)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 120)
	v.SetDefault("rate_limit.burst", 20)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the YAML file at path. Environment variables such as API_JWT_SIGNING_KEY
// override file values. A missing file leaves defaults and environment in place.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return &conf, nil
}

func (c *AppConfig) Validate() error {
	if err := validation.ValidateStruct(c.API,
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.JWTSigningKey, validation.Required),
		validation.Field(&c.API.JWTExpiration, validation.Required),
		validation.Field(&c.API.Timezone, validation.Required, validation.By(validTimezone)),
	); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := validation.ValidateStruct(c.Storage,
		validation.Field(&c.Storage.Driver, validation.Required, validation.In(StorageLocal, StorageS3)),
		validation.Field(&c.Storage.TempDir, validation.Required),
	); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Storage.Driver == StorageLocal {
		if err := validation.ValidateStruct(c.Storage,
			validation.Field(&c.Storage.LocalDir, validation.Required),
		); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}

	if c.Storage.Driver == StorageS3 {
		if err := validation.ValidateStruct(c.Storage.S3,
			validation.Field(&c.Storage.S3.Bucket, validation.Required),
			validation.Field(&c.Storage.S3.Region, validation.Required),
		); err != nil {
			return fmt.Errorf("storage.s3: %w", err)
		}
	}

	if c.RateLimit.Enabled {
		if err := validation.ValidateStruct(c.RateLimit,
			validation.Field(&c.RateLimit.RequestsPerMinute, validation.Required, validation.Min(1)),
			validation.Field(&c.RateLimit.Burst, validation.Required, validation.Min(1)),
		); err != nil {
			return fmt.Errorf("rate_limit: %w", err)
		}
	}

	return nil
}

func validTimezone(value interface{}) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return errors.New("must be a valid IANA time zone")
	}

	return nil
}

// Location returns the time zone date-only request values are read in.
func (c *APIConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	AssetSourceFilesystem = "filesystem"
	AssetSourceDrive      = "drive"
)

// Config holds all settings of a catalog generation run
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Assets   AssetConfig
	Database DatabaseConfig
	Persist  PersistConfig

	PricingConfigPath string `env:"PRICING_CONFIG_PATH"`
	RandomSeed        uint64 `env:"CATALOG_RANDOM_SEED" envDefault:"0"`
	DryRun            bool   `env:"DRY_RUN" envDefault:"false"`
	PushgatewayURL    string `env:"PUSHGATEWAY_URL"`
}

// AssetConfig selects where product photographs are read from
type AssetConfig struct {
	Source         string `env:"ASSET_SOURCE" envDefault:"filesystem"`
	ImagesDir      string `env:"PRODUCT_IMAGES_DIR" envDefault:"public/images/products"`
	ImageURLPrefix string `env:"PRODUCT_IMAGE_URL_PREFIX" envDefault:"/images/products"`
	VerifyImages   bool   `env:"VERIFY_IMAGES" envDefault:"false"`

	DriveFolderID   string `env:"DRIVE_FOLDER_ID"`
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// DatabaseConfig holds the PostgreSQL connection settings.
// URL wins over the individual fields when set.
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"DB_MAX_CONNS" envDefault:"4"`
}

// PersistConfig controls retries of product writes
type PersistConfig struct {
	MaxTries      uint          `env:"PERSIST_MAX_TRIES" envDefault:"3"`
	RetryInterval time.Duration `env:"PERSIST_RETRY_INTERVAL" envDefault:"500ms"`
}

// Load parses environment variables into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	var errs []error

	switch c.Assets.Source {
	case AssetSourceFilesystem:
		if c.Assets.ImagesDir == "" {
			errs = append(errs, errors.New("PRODUCT_IMAGES_DIR is required for the filesystem source"))
		}
	case AssetSourceDrive:
		if c.Assets.DriveFolderID == "" {
			errs = append(errs, errors.New("DRIVE_FOLDER_ID is required for the drive source"))
		}
		if c.Assets.CredentialsPath == "" {
			errs = append(errs, errors.New("GOOGLE_APPLICATION_CREDENTIALS is required for the drive source"))
		}
	default:
		errs = append(errs, fmt.Errorf("ASSET_SOURCE must be %q or %q, got %q", AssetSourceFilesystem, AssetSourceDrive, c.Assets.Source))
	}

	if !c.DryRun {
		if _, err := c.Database.ConnString(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Persist.MaxTries == 0 {
		errs = append(errs, errors.New("PERSIST_MAX_TRIES must be at least 1"))
	}

	return errors.Join(errs...)
}

// ConnString returns DATABASE_URL or a URL built from the DB_* fields
func (d DatabaseConfig) ConnString() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return "", errors.New("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String(), nil
}

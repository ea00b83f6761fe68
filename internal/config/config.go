package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flexprice/gstinvoice/internal/taxsummary"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Invoice    InvoiceConfig    `validate:"required"`
	Storage    StorageConfig    `validate:"required"`
	Cache      CacheConfig
	Sentry     SentryConfig
	Supabase   SupabaseConfig
	Postgres   PostgresConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// InvoiceConfig controls document synthesis.
type InvoiceConfig struct {
	SummaryStrategy       types.SummaryStrategy       `mapstructure:"summary_strategy" validate:"required"`
	Brackets              []float64                   `mapstructure:"brackets"`
	UnsupportedRatePolicy types.UnsupportedRatePolicy `mapstructure:"unsupported_rate_policy" validate:"required"`
	MinItemRows           int                         `mapstructure:"min_item_rows" validate:"gte=0"`
	Source                types.InvoiceSource         `mapstructure:"source" validate:"required,oneof=file supabase postgres"`
	SourceDir             string                      `mapstructure:"source_dir"`
}

type StorageConfig struct {
	Kind     types.StorageKind `mapstructure:"kind" validate:"required,oneof=fs s3"`
	BasePath string            `mapstructure:"base_path"`
	S3       S3Config          `mapstructure:"s3"`
}

type S3Config struct {
	Region        string        `mapstructure:"region"`
	Bucket        string        `mapstructure:"bucket"`
	KeyPrefix     string        `mapstructure:"key_prefix"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type SupabaseConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Key     string `mapstructure:"key"`
	Table   string `mapstructure:"table"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	Table    string `mapstructure:"table"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("INVOICEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are missing from the file.
func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("deployment.mode", d.Deployment.Mode)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("invoice.summary_strategy", d.Invoice.SummaryStrategy)
	v.SetDefault("invoice.brackets", d.Invoice.Brackets)
	v.SetDefault("invoice.unsupported_rate_policy", d.Invoice.UnsupportedRatePolicy)
	v.SetDefault("invoice.min_item_rows", d.Invoice.MinItemRows)
	v.SetDefault("invoice.source", d.Invoice.Source)
	v.SetDefault("invoice.source_dir", d.Invoice.SourceDir)
	v.SetDefault("storage.kind", d.Storage.Kind)
	v.SetDefault("storage.base_path", d.Storage.BasePath)
	v.SetDefault("storage.s3.region", "")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.key_prefix", "invoices")
	v.SetDefault("storage.s3.presign_expiry", 15*time.Minute)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("supabase.base_url", "")
	v.SetDefault("supabase.key", "")
	v.SetDefault("supabase.table", "invoices")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.table", "invoices")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Invoice.SummaryStrategy.Validate(); err != nil {
		return err
	}
	if err := c.Invoice.UnsupportedRatePolicy.Validate(); err != nil {
		return err
	}
	if _, err := types.ParseTaxBrackets(c.Invoice.Brackets); err != nil {
		return err
	}
	if c.Storage.Kind == types.StorageKindS3 && c.Storage.S3.Bucket == "" {
		return errors.New("storage.s3.bucket is required when storage.kind is s3")
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Invoice: InvoiceConfig{
			SummaryStrategy:       types.SummaryStrategyFixed,
			Brackets:              []float64{5, 12, 18, 28},
			UnsupportedRatePolicy: types.UnsupportedRateExclude,
			MinItemRows:           10,
			Source:                types.InvoiceSourceFile,
			SourceDir:             "./data/invoices",
		},
		Storage: StorageConfig{
			Kind:     types.StorageKindFS,
			BasePath: "./data/pdf",
			S3:       S3Config{KeyPrefix: "invoices", PresignExpiry: 15 * time.Minute},
		},
		Cache: CacheConfig{Enabled: true, TTL: 30 * time.Minute},
	}
}

// TaxSummary builds the aggregator configuration. Brackets are assumed to
// have passed Validate.
func (c InvoiceConfig) TaxSummary() taxsummary.Config {
	brackets, _ := types.ParseTaxBrackets(c.Brackets)
	return taxsummary.Config{
		Strategy:        c.SummaryStrategy,
		Brackets:        brackets,
		UnsupportedRate: c.UnsupportedRatePolicy,
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}

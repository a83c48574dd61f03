package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

const (
	// StoreDriverRedis keeps shipment records in Redis.
	StoreDriverRedis = "redis"
	// StoreDriverPostgres keeps shipment records in PostgreSQL.
	StoreDriverPostgres = "postgres"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// LogFile is an optional path for a rotated JSON log file.
	LogFile string `mapstructure:"LOG_FILE"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Store selects and configures the shipment record store.
	Store StoreConfig `mapstructure:",squash"`

	// Functions configures the remote lookup functions client.
	Functions FunctionsConfig `mapstructure:",squash"`

	// Tracking holds the resolution pipeline settings.
	Tracking TrackingConfig `mapstructure:",squash"`

	// Seeder controls the demo data check job.
	Seeder SeederConfig `mapstructure:",squash"`
}

// StoreConfig holds the record store connection details.
type StoreConfig struct {
	// Driver is either "redis" or "postgres".
	Driver string `mapstructure:"STORE_DRIVER" default:"redis"`
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// MaxConns caps the pgx pool size.
	MaxConns int `mapstructure:"DB_MAX_CONNS" default:"10"`
	// RedisURL is the Redis connection string.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// FunctionsConfig holds the endpoint of the privileged lookup functions.
type FunctionsConfig struct {
	// URL is the base URL serving /functions/v1/*. Empty disables the remote strategy.
	URL string `mapstructure:"FUNCTIONS_URL"`
	// Key is sent as a bearer token when set.
	Key string `mapstructure:"FUNCTIONS_KEY"`
	// TimeoutSeconds bounds every function call.
	TimeoutSeconds int `mapstructure:"FUNCTIONS_TIMEOUT_SECONDS" default:"10"`
}

// TrackingConfig holds the resolution pipeline settings.
type TrackingConfig struct {
	// DemoConsignmentNo is the reserved demonstration consignment number.
	DemoConsignmentNo string `mapstructure:"DEMO_CONSIGNMENT_NO" default:"MT-202503657" required:"true"`
	// RetryDelayMs is the wait between the demo bootstrap and the retry.
	RetryDelayMs int `mapstructure:"TRACKING_RETRY_DELAY_MS" default:"2000"`
	// Timezone is the IANA zone used to render timeline dates.
	Timezone string `mapstructure:"TRACKING_TIMEZONE" default:"UTC"`
	// DemoFallback enables the in-memory demo record on the retry pass.
	DemoFallback bool `mapstructure:"TRACKING_DEMO_FALLBACK" default:"true"`
}

// SeederConfig controls the demo data check job.
type SeederConfig struct {
	// OnStart runs the check once at boot.
	OnStart bool `mapstructure:"DEMO_SEED_ON_START" default:"true"`
	// Schedule is a cron spec; empty disables periodic checks.
	Schedule string `mapstructure:"DEMO_SEED_SCHEDULE" default:"@every 1h"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	config.Tracking.DemoConsignmentNo = strings.TrimSpace(config.Tracking.DemoConsignmentNo)

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks rules that span several fields.
func (c *AppConfig) Validate() error {
	switch c.Store.Driver {
	case StoreDriverRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("missing required configuration: REDIS_URL")
		}
	case StoreDriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("missing required configuration: DATABASE_URL")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %q", c.Store.Driver)
	}

	if c.Tracking.RetryDelayMs < 0 {
		return fmt.Errorf("TRACKING_RETRY_DELAY_MS must not be negative")
	}

	return nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

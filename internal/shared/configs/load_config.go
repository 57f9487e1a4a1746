package configs

import (
	"fmt"
	"strings"

	"log-stats/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. LOG_STATS_DATABASE_DSN.
const EnvPrefix = "LOG_STATS"

// LoadConfig reads configuration from file, applies defaults and environment overrides, and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.FileStorage.validateBackend(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setDefaults registers a default for every key so that AutomaticEnv can override
// keys that are absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.insert_chunk_size", 500)

	v.SetDefault("file_storage.backend", "local")
	v.SetDefault("file_storage.root_dir", "")
	v.SetDefault("file_storage.s3.bucket", "")
	v.SetDefault("file_storage.s3.region", "")
	v.SetDefault("file_storage.s3.prefix", "")

	v.SetDefault("ingestion.batch_size", 1000)
	v.SetDefault("ingestion.workers", 1)
	v.SetDefault("ingestion.queue_buffer", 64)
	v.SetDefault("ingestion.max_upload_bytes", 64*1024*1024)
}

func (c FileStorageConfig) validateBackend() error {
	if c.Backend == "s3" && (c.S3.Bucket == "" || c.S3.Region == "") {
		return fmt.Errorf("filestorage.s3.bucket and filestorage.s3.region are required for the s3 backend")
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}

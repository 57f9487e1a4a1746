package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig holds the relational store configuration.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	DSN             string `mapstructure:"dsn" validate:"required"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"min=0"` // seconds, 0 = unlimited
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
	InsertChunkSize int    `mapstructure:"insert_chunk_size" validate:"required,min=1,max=5000"` // rows per INSERT statement
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	Backend string   `mapstructure:"backend" validate:"required,oneof=local s3"`
	RootDir string   `mapstructure:"root_dir" validate:"required_if=Backend local"`
	S3      S3Config `mapstructure:"s3"`
}

// S3Config holds the bucket settings used when FileStorage.Backend is s3.
type S3Config struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
	Prefix string `mapstructure:"prefix"`
}

// IngestionConfig holds ingestion pipeline configuration.
type IngestionConfig struct {
	BatchSize      int   `mapstructure:"batch_size" validate:"required,min=1"`
	Workers        int   `mapstructure:"workers" validate:"required,min=1,max=64"`
	QueueBuffer    int   `mapstructure:"queue_buffer" validate:"required,min=1"`
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"required,min=1"`
}

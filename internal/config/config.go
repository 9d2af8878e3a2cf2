package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Reward      RewardConfig      `yaml:"reward"`
	ObjectStore ObjectStoreConfig `yaml:"object_store"`
	Worker      WorkerConfig      `yaml:"worker"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// ServerConfig holds HTTP server settings. UploadRateLimit caps proof
// uploads per minute per caller; 0 disables the limiter.
type ServerConfig struct {
	Host            string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port            int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"      env:"SERVER_IDLE_TIMEOUT"      env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	UploadRateLimit int           `yaml:"upload_rate_limit" env:"SERVER_UPLOAD_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	TxTimeout       time.Duration `yaml:"tx_timeout"         env:"DATABASE_TX_TIMEOUT"         env-default:"10s"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds token verification settings. Tokens are issued by the
// identity platform with a shared HS256 secret; this service only verifies.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"questline"`
}

// RewardConfig holds treasury client settings for reward dispatch.
type RewardConfig struct {
	BaseURL         string        `yaml:"base_url"         env:"REWARD_BASE_URL"         env-required:"true"`
	ServiceToken    string        `yaml:"service_token"    env:"REWARD_SERVICE_TOKEN"`
	DispatchTimeout time.Duration `yaml:"dispatch_timeout" env:"REWARD_DISPATCH_TIMEOUT" env-default:"5s"`
}

// ObjectStoreConfig holds S3-compatible storage settings for proof uploads.
// Leaving Endpoint empty disables the upload endpoint.
type ObjectStoreConfig struct {
	Endpoint        string `yaml:"endpoint"          env:"OBJECTSTORE_ENDPOINT"`
	Region          string `yaml:"region"            env:"OBJECTSTORE_REGION"            env-default:"auto"`
	AccessKeyID     string `yaml:"access_key_id"     env:"OBJECTSTORE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"OBJECTSTORE_SECRET_ACCESS_KEY"`
	Bucket          string `yaml:"bucket"            env:"OBJECTSTORE_BUCKET"`
	PublicBaseURL   string `yaml:"public_base_url"   env:"OBJECTSTORE_PUBLIC_BASE_URL"`
	UsePathStyle    bool   `yaml:"use_path_style"    env:"OBJECTSTORE_USE_PATH_STYLE"    env-default:"false"`
	MaxUploadBytes  int64  `yaml:"max_upload_bytes"  env:"OBJECTSTORE_MAX_UPLOAD_BYTES"  env-default:"10485760"`
}

// WorkerConfig holds in-process background job settings.
type WorkerConfig struct {
	ExpiryInterval time.Duration `yaml:"expiry_interval" env:"WORKER_EXPIRY_INTERVAL" env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Enabled reports whether the object store is fully configured. The proof
// upload endpoint is mounted only when it is.
func (c ObjectStoreConfig) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != "" && c.PublicBaseURL != ""
}

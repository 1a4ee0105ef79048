package config

import (
	"time"

	"github.com/heartmarshall/signphon/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Parser     ParserConfig     `yaml:"parser"`
	Similarity SimilarityConfig `yaml:"similarity"`
	SignBank   SignBankConfig   `yaml:"signbank"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds editor token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"signphon"`
	EditorTokenTTL time.Duration `yaml:"editor_token_ttl" env:"AUTH_EDITOR_TOKEN_TTL" env-default:"720h"`
}

// ParserConfig holds the default parse options of the service.
type ParserConfig struct {
	TablePath string   `yaml:"table_path" env:"PARSER_TABLE_PATH"`
	Enabled   []string `yaml:"enabled"    env:"PARSER_ENABLED"    env-separator:"," env-default:"handshape,orientation,location,contact,movement"`
	ASCII     bool     `yaml:"ascii"      env:"PARSER_ASCII"      env-default:"false"`
	Separator string   `yaml:"separator"  env:"PARSER_SEPARATOR"  env-default:"."`
	MaxGlyphs int      `yaml:"max_glyphs" env:"PARSER_MAX_GLYPHS" env-default:"500"`

	// EnabledSet is parsed from Enabled during validation.
	EnabledSet domain.CategorySet `yaml:"-" env:"-"`
}

// SimilarityConfig holds the distance weights and search limits.
type SimilarityConfig struct {
	Weights       map[string]float64 `yaml:"weights"        env:"SIMILARITY_WEIGHTS"        env-default:"shape:5,orientation:3,location:2,movement:1,contact:2,repetition:2"`
	DefaultLimit  int                `yaml:"default_limit"  env:"SIMILARITY_DEFAULT_LIMIT"  env-default:"10"`
	MaxLimit      int                `yaml:"max_limit"      env:"SIMILARITY_MAX_LIMIT"      env-default:"100"`
	MaxCandidates int                `yaml:"max_candidates" env:"SIMILARITY_MAX_CANDIDATES" env-default:"5000"`
	Workers       int                `yaml:"workers"        env:"SIMILARITY_WORKERS"        env-default:"4"`
}

// SignBankConfig holds sign bank service settings.
type SignBankConfig struct {
	MaxGlossLength          int `yaml:"max_gloss_length"           env:"SIGNBANK_MAX_GLOSS_LENGTH"           env-default:"200"`
	DefaultPageSize         int `yaml:"default_page_size"          env:"SIGNBANK_DEFAULT_PAGE_SIZE"          env-default:"50"`
	MaxPageSize             int `yaml:"max_page_size"              env:"SIGNBANK_MAX_PAGE_SIZE"              env-default:"200"`
	HardDeleteRetentionDays int `yaml:"hard_delete_retention_days" env:"SIGNBANK_HARD_DELETE_RETENTION_DAYS" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

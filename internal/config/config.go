package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Redis     RedisConfig     `yaml:"redis"`
	Broker    BrokerConfig    `yaml:"broker"`
	Auth      AuthConfig      `yaml:"auth"`
	Geocode   GeocodeConfig   `yaml:"geocode"`
	Location  LocationConfig  `yaml:"location"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
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

// DatabaseConfig holds PostgreSQL connection settings for the service directory.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MongoConfig holds document store settings for call logging and contacts.
type MongoConfig struct {
	URI                string        `yaml:"uri"                 env:"MONGO_URI"                 env-default:"mongodb://localhost:27017"`
	Database           string        `yaml:"database"            env:"MONGO_DATABASE"            env-default:"emergency"`
	CallsCollection    string        `yaml:"calls_collection"    env:"MONGO_CALLS_COLLECTION"    env-default:"calls"`
	ContactsCollection string        `yaml:"contacts_collection" env:"MONGO_CONTACTS_COLLECTION" env-default:"contacts"`
	ConnectTimeout     time.Duration `yaml:"connect_timeout"     env:"MONGO_CONNECT_TIMEOUT"     env-default:"15s"`
}

// RedisConfig holds cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr          string        `yaml:"addr"           env:"REDIS_ADDR"`
	Password      string        `yaml:"password"       env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db"             env:"REDIS_DB"             env-default:"0"`
	Prefix        string        `yaml:"prefix"         env:"REDIS_PREFIX"         env-default:"emergency"`
	GeocodeTTL    time.Duration `yaml:"geocode_ttl"    env:"REDIS_GEOCODE_TTL"    env-default:"24h"`
	FilterOptsTTL time.Duration `yaml:"filter_opts_ttl" env:"REDIS_FILTER_OPTS_TTL" env-default:"5m"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// BrokerConfig holds message broker settings. An empty URL disables call events.
type BrokerConfig struct {
	URL            string        `yaml:"url"             env:"AMQP_URL"`
	CallQueue      string        `yaml:"call_queue"      env:"AMQP_CALL_QUEUE"      env-default:"call.placed"`
	Prefetch       int           `yaml:"prefetch"        env:"AMQP_PREFETCH"        env-default:"50"`
	DialTimeout    time.Duration `yaml:"dial_timeout"    env:"AMQP_DIAL_TIMEOUT"    env-default:"3s"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"AMQP_PUBLISH_TIMEOUT" env-default:"5s"`
	BufferSize     int           `yaml:"buffer_size"     env:"AMQP_BUFFER_SIZE"     env-default:"256"`
}

// Enabled reports whether a broker URL is configured.
func (c BrokerConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"emergency-backend"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	PasswordCost   int           `yaml:"password_cost"    env:"AUTH_PASSWORD_COST"    env-default:"10"`
	PhoneRegion    string        `yaml:"phone_region"     env:"AUTH_PHONE_REGION"     env-default:"PH"`
}

// GeocodeConfig holds reverse geocoding provider settings.
type GeocodeConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"GEOCODE_BASE_URL"   env-default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `yaml:"user_agent" env:"GEOCODE_USER_AGENT" env-default:"emergency-backend/1.0"`
	Timeout   time.Duration `yaml:"timeout"    env:"GEOCODE_TIMEOUT"    env-default:"5s"`
}

// LocationConfig holds the fallback location used when the device location is unavailable.
type LocationConfig struct {
	FallbackBarangay  string  `yaml:"fallback_barangay"  env:"LOCATION_FALLBACK_BARANGAY"  env-default:"Fort Bonifacio"`
	FallbackCity      string  `yaml:"fallback_city"      env:"LOCATION_FALLBACK_CITY"      env-default:"Taguig"`
	FallbackRegion    string  `yaml:"fallback_region"    env:"LOCATION_FALLBACK_REGION"    env-default:"Metro Manila"`
	FallbackCountry   string  `yaml:"fallback_country"   env:"LOCATION_FALLBACK_COUNTRY"   env-default:"Philippines"`
	FallbackLatitude  float64 `yaml:"fallback_latitude"  env:"LOCATION_FALLBACK_LATITUDE"  env-default:"14.54952569"`
	FallbackLongitude float64 `yaml:"fallback_longitude" env:"LOCATION_FALLBACK_LONGITUDE" env-default:"121.054156"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"120"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

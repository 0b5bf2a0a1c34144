package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // "postgres" or "mysql"
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL             string        `mapstructure:"url"`
	StreamName      string        `mapstructure:"stream_name"`
	SubjectPrefix   string        `mapstructure:"subject_prefix"`
	ConsumerName    string        `mapstructure:"consumer_name"`
	PresenceStream  string        `mapstructure:"presence_stream"`
	PresenceSubject string        `mapstructure:"presence_subject"`
	PresenceSecret  string        `mapstructure:"presence_secret"` // verifies signed presence messages when set
	MaxReconnects   int           `mapstructure:"max_reconnects"`
	ReconnectWait   time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName  string        `mapstructure:"connection_name"`
	AckWait         time.Duration `mapstructure:"ack_wait"`
	MaxDeliver      int           `mapstructure:"max_deliver"`
}

// AMQPConfig holds RabbitMQ configuration
type AMQPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	VHost    string `mapstructure:"vhost"`
	Exchange string `mapstructure:"exchange"`
}

// BroadcastConfig selects where market events are published
type BroadcastConfig struct {
	Driver        string        `mapstructure:"driver"` // "nats", "amqp" or "none"
	PublishRetry  time.Duration `mapstructure:"publish_retry"`
	SigningSecret string        `mapstructure:"signing_secret"` // signs published events when set
	Workers       int           `mapstructure:"workers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// PersistenceConfig holds the snapshot flusher configuration
type PersistenceConfig struct {
	SaveInterval     time.Duration `mapstructure:"save_interval"`
	RetryMaxElapsed  time.Duration `mapstructure:"retry_max_elapsed"`
	WriteThroughWait time.Duration `mapstructure:"write_through_wait"` // coalescing window for immediate saves
}

// SweeperConfig holds the listing expiry sweeper configuration
type SweeperConfig struct {
	ExpiryInterval time.Duration `mapstructure:"expiry_interval"`
}

// MarketServerConfig holds configuration for the market server
type MarketServerConfig struct {
	BaseConfig        `mapstructure:",squash"`
	Server            ServerConfig      `mapstructure:"server"`
	Database          DatabaseConfig    `mapstructure:"database"`
	NATS              NATSConfig        `mapstructure:"nats"`
	AMQP              AMQPConfig        `mapstructure:"amqp"`
	Broadcast         BroadcastConfig   `mapstructure:"broadcast"`
	Auth              AuthConfig        `mapstructure:"auth"`
	Worker            WorkerConfig      `mapstructure:"worker"`
	Persistence       PersistenceConfig `mapstructure:"persistence"`
	Sweeper           SweeperConfig     `mapstructure:"sweeper"`
	Economy           EconomyConfig     `mapstructure:"economy"`
	BlacklistPath     string            `mapstructure:"blacklist_path"`
	RecyclePricesPath string            `mapstructure:"recycle_prices_path"`
}

// LoadMarketServerConfig loads configuration for the market server
func LoadMarketServerConfig(configFile string, envPath string) (*MarketServerConfig, error) {
	v := configureViper("market-server", configFile, envPath)
	return readMarketServerConfig(v)
}

// WatchMarketServerConfig loads configuration for the market server and keeps watching the config file.
// onEconomyChange receives every reloaded economy section that passes validation; invalid reloads
// are reported to onError and otherwise ignored. Only the economy section is hot-reloadable.
func WatchMarketServerConfig(configFile string, envPath string, onEconomyChange func(EconomyConfig), onError func(error)) (*MarketServerConfig, error) {
	v := configureViper("market-server", configFile, envPath)
	cfg, err := readMarketServerConfig(v)
	if err != nil {
		return nil, err
	}

	if v.ConfigFileUsed() == "" {
		return cfg, nil
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		var reloaded MarketServerConfig
		if err := v.Unmarshal(&reloaded); err != nil {
			onError(fmt.Errorf("failed to unmarshal reloaded config: %w", err))
			return
		}
		reloaded.Economy.Normalize()
		if err := reloaded.Economy.Validate(); err != nil {
			onError(fmt.Errorf("reloaded economy config is invalid: %w", err))
			return
		}
		onEconomyChange(reloaded.Economy)
	})
	v.WatchConfig()

	return cfg, nil
}

func readMarketServerConfig(v *viper.Viper) (*MarketServerConfig, error) {
	setMarketServerDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg MarketServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Economy.Normalize()
	if err := cfg.Economy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid economy config: %w", err)
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	switch cfg.Broadcast.Driver {
	case BroadcastNATS, BroadcastAMQP, BroadcastNone:
	default:
		return nil, fmt.Errorf("unsupported broadcast driver: %s", cfg.Broadcast.Driver)
	}

	return &cfg, nil
}

func setMarketServerDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKET_EVENTS")
	v.SetDefault("nats.subject_prefix", "market")
	v.SetDefault("nats.consumer_name", "market-presence")
	v.SetDefault("nats.presence_stream", "HOST_PRESENCE")
	v.SetDefault("nats.presence_subject", "host.presence.>")
	v.SetDefault("nats.connection_name", "ff-market")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("amqp.port", 5672)
	v.SetDefault("amqp.vhost", "/")
	v.SetDefault("amqp.exchange", "market.events")
	v.SetDefault("broadcast.driver", BroadcastNone)
	v.SetDefault("broadcast.publish_retry", "10s")
	v.SetDefault("broadcast.workers", 4)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 1024)
	v.SetDefault("persistence.save_interval", "300s")
	v.SetDefault("persistence.retry_max_elapsed", "1m")
	v.SetDefault("persistence.write_through_wait", "1s")
	v.SetDefault("sweeper.expiry_interval", "1m")
	setEconomyDefaults(v)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"blacklist_path",
		"recycle_prices_path",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.consumer_name",
		"nats.presence_stream",
		"nats.presence_subject",
		"nats.presence_secret",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// AMQP
		"amqp.host",
		"amqp.port",
		"amqp.user",
		"amqp.password",
		"amqp.vhost",
		"amqp.exchange",
		// Broadcast
		"broadcast.driver",
		"broadcast.publish_retry",
		"broadcast.signing_secret",
		"broadcast.workers",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Persistence
		"persistence.save_interval",
		"persistence.retry_max_elapsed",
		"persistence.write_through_wait",
		// Sweeper
		"sweeper.expiry_interval",
		// Economy
		"economy.max_listings_per_owner",
		"economy.max_trade_price",
		"economy.max_balance",
		"economy.initial_balance",
		"economy.tax_rate",
		"economy.recycle_rate",
		"economy.listing_ttl",
		"economy.max_trade_history",
		"economy.currency_name",
		"economy.item_blacklist",
		"economy.recycle_blacklist",
		"economy.admins",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	BroadcastNATS = "nats"
	BroadcastAMQP = "amqp"
	BroadcastNone = "none"
)

// DSN returns the database connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	return c.dsn(c.Host, c.Port)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}
	return c.dsn(c.ReadHost, port)
}

func (c *DatabaseConfig) dsn(host string, port int) string {
	if c.Driver == DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, host, port, c.DBName)
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the AMQP connection URL
func (c *AMQPConfig) URL() string {
	vhost := c.VHost
	if vhost == "/" {
		vhost = ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", c.User, c.Password, c.Host, c.Port, strings.TrimPrefix(vhost, "/"))
}

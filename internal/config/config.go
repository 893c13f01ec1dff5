package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/caarlos0/env/v10"
	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"

	"github.com/rowantrollope/pathkit/internal/bookmark"
	"github.com/rowantrollope/pathkit/internal/logger"
)

// Bookmark store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all connection and runtime configuration.
type Config struct {
	Store string `env:"PATHKIT_STORE"`

	Host     string `env:"PATHKIT_REDIS_HOST"`
	Port     int    `env:"PATHKIT_REDIS_PORT"`
	Socket   string `env:"PATHKIT_REDIS_SOCKET"`
	Password string `env:"REDISCLI_AUTH"`
	DB       int    `env:"PATHKIT_REDIS_DB"`
	URI      string `env:"PATHKIT_REDIS_URL"`

	TLS    bool   `env:"PATHKIT_REDIS_TLS"`
	CACert string `env:"PATHKIT_REDIS_CACERT"`
	Cert   string `env:"PATHKIT_REDIS_CERT"`
	Key    string `env:"PATHKIT_REDIS_KEY"`

	Namespace string `env:"PATHKIT_NAMESPACE"`
	Cwd       string `env:"PATHKIT_CWD"`

	JSON       bool
	NoColor    bool
	Color      bool
	NoColorEnv string `env:"NO_COLOR"`

	HistoryFile string `env:"PATHKIT_HISTORY"`

	LogLevel  string `env:"PATHKIT_LOG_LEVEL"`
	LogFormat string `env:"PATHKIT_LOG_FORMAT"`

	// Remaining args after flag parsing (single-command mode)
	Args []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}

	return &Config{
		Store:       StoreMemory,
		Host:        "127.0.0.1",
		Port:        6379,
		Namespace:   "main",
		Cwd:         cwd,
		HistoryFile: home + "/.pathkit_history",
		LogLevel:    "warn",
		LogFormat:   string(logger.FormatText),
	}
}

// LoadEnv overlays environment variables onto c. Variables that are unset
// leave the current value in place. A nil environ reads the process
// environment.
func (c *Config) LoadEnv(environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// RegisterFlags registers CLI flags on the given flag set.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Store, "store", c.Store, "Bookmark store (memory|redis)")

	fs.StringVarP(&c.Host, "host", "h", c.Host, "Redis hostname")
	fs.IntVarP(&c.Port, "port", "p", c.Port, "Redis port")
	fs.StringVarP(&c.Socket, "socket", "s", c.Socket, "Redis unix socket path")
	fs.StringVarP(&c.Password, "password", "a", c.Password, "Redis password")
	fs.IntVarP(&c.DB, "db", "n", c.DB, "Redis database number")
	fs.StringVarP(&c.URI, "uri", "u", c.URI, "Redis URI (redis://...)")

	fs.BoolVar(&c.TLS, "tls", c.TLS, "Enable TLS")
	fs.StringVar(&c.CACert, "cacert", c.CACert, "CA certificate file")
	fs.StringVar(&c.Cert, "cert", c.Cert, "Client certificate file")
	fs.StringVar(&c.Key, "key", c.Key, "Client key file")

	fs.StringVar(&c.Namespace, "namespace", c.Namespace, "Bookmark namespace")
	fs.StringVar(&c.Cwd, "cwd", c.Cwd, "Initial working directory")

	fs.BoolVar(&c.JSON, "json", false, "JSON output mode")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&c.Color, "color", false, "Force colors")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text|json)")
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Store != StoreMemory && c.Store != StoreRedis {
		return fmt.Errorf("invalid store: %s (must be memory or redis)", c.Store)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Port)
	}
	if c.DB < 0 {
		return fmt.Errorf("invalid redis database: %d", c.DB)
	}
	if err := bookmark.ValidateName(c.Namespace); err != nil {
		return fmt.Errorf("invalid namespace: %w", err)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}
	if (c.Cert == "") != (c.Key == "") {
		return fmt.Errorf("--cert and --key must be given together")
	}
	return nil
}

// RedisOptions builds a go-redis Options from the config.
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.URI != "" {
		opts, err := redis.ParseURL(c.URI)
		if err != nil {
			return nil, fmt.Errorf("parse redis uri: %w", err)
		}
		if c.DB != 0 {
			opts.DB = c.DB
		}
		// Credentials in the URI win over --password / REDISCLI_AUTH.
		if opts.Password == "" {
			opts.Password = c.Password
		}
		// rediss:// already enables TLS; --tls upgrades redis://.
		if c.TLS || opts.TLSConfig != nil {
			host, _, err := net.SplitHostPort(opts.Addr)
			if err != nil {
				host = opts.Addr
			}
			tlsCfg, err := c.tlsConfig(host)
			if err != nil {
				return nil, err
			}
			opts.TLSConfig = tlsCfg
		}
		return opts, nil
	}

	opts := &redis.Options{
		Addr:     c.Host + ":" + strconv.Itoa(c.Port),
		Password: c.Password,
		DB:       c.DB,
	}

	if c.Socket != "" {
		opts.Network = "unix"
		opts.Addr = c.Socket
	}

	if c.TLS {
		tlsCfg, err := c.tlsConfig(c.Host)
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = tlsCfg
	}

	return opts, nil
}

func (c *Config) tlsConfig(serverName string) (*tls.Config, error) {
	cfg := &tls.Config{ServerName: serverName}
	if c.CACert != "" {
		pem, err := os.ReadFile(c.CACert)
		if err != nil {
			return nil, fmt.Errorf("read ca cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("read ca cert: no certificates in %s", c.CACert)
		}
		cfg.RootCAs = pool
	}
	if c.Cert != "" {
		pair, err := tls.LoadX509KeyPair(c.Cert, c.Key)
		if err != nil {
			return nil, fmt.Errorf("load client cert: %w", err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}
	return cfg, nil
}

// Addr returns a display-friendly connection address.
func (c *Config) Addr() string {
	if c.URI != "" {
		return c.URI
	}
	if c.Socket != "" {
		return c.Socket
	}
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ShouldColor returns true if color output should be enabled.
func (c *Config) ShouldColor() bool {
	if c.NoColor {
		return false
	}
	if c.Color {
		return true
	}
	if c.NoColorEnv != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LoggerConfig returns the logger settings derived from c.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:   c.LogLevel,
		Format:  logger.Format(c.LogFormat),
		NoColor: !c.ShouldColor(),
	}
}

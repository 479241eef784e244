package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/bab-library/catalog-service/internal/links"
	"github.com/bab-library/catalog-service/internal/openlibrary"
	"github.com/bab-library/catalog-service/pkg/kafka"
	"github.com/bab-library/catalog-service/pkg/logger"
	"github.com/bab-library/catalog-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration
}

type Admin struct {
	// Bcrypt hash provisioned into the settings collection on startup.
	// When empty the stored value is left untouched.
	PasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH" json:"-"`
	SessionTTL   time.Duration `envconfig:"ADMIN_SESSION_TTL" default:"60m"`
}

type Config struct {
	Server      HTTPServer
	Database    postgres.Config
	Kafka       kafka.Config
	OpenLibrary openlibrary.Config
	Links       links.Config
	Admin       Admin
	Log         logger.Log
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(config)
	})

	return cfg
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

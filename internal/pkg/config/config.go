package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DevJWTSecret is the signing secret used when JWT_SECRET is unset. It is a
// known weak default for local development only; the server logs a warning
// at startup whenever it is in effect.
const DevJWTSecret = "recetas-dev-secret-do-not-use-in-production"

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	JWTSecret  string `env:"JWT_SECRET"`
	AdminEmail string `env:"ADMIN_EMAIL, default=admin@mikens.com"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=recetas"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// SigningSecret returns the JWT signing secret and whether the insecure
// development fallback is in effect.
func (c *Config) SigningSecret() (secret string, devFallback bool) {
	if c.JWTSecret == "" {
		return DevJWTSecret, true
	}
	return c.JWTSecret, false
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	RequestTimeout  int // seconds
	RateLimit       float64
	RateBurst       int
	AuthRateLimit   float64 // per IP, /login and /register
	AuthRateBurst   int
	MaxConcurrency  int64
	MaxBodyBytes    int64
	CORSOrigins     []string
}

type App struct {
	Name string
	Env  string
}

type Log struct {
	Level      string
	JSON       bool
	File       string // empty disables the rotated file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Session struct {
	Driver       string // "memory" or "redis"
	CookieName   string
	CookieSecure bool
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Seed struct {
	Enabled       bool
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

type Credential struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

type Config struct {
	App        App
	HTTP       HTTP
	Log        Log
	JWT        JWT
	Session    Session
	Redis      Redis `mapstructure:"redis"`
	Seed       Seed
	Credential Credential
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shuttle-checkin")
	v.SetDefault("app.env", "local")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readTimeoutSec", 5)
	v.SetDefault("http.writeTimeoutSec", 10)
	v.SetDefault("http.idleTimeoutSec", 60)
	v.SetDefault("http.requestTimeout", 10)
	v.SetDefault("http.rateLimit", 200)
	v.SetDefault("http.rateBurst", 400)
	v.SetDefault("http.authRateLimit", 1)
	v.SetDefault("http.authRateBurst", 10)
	v.SetDefault("http.maxConcurrency", 300)
	v.SetDefault("http.maxBodyBytes", 1<<20)
	v.SetDefault("http.corsOrigins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.maxSizeMB", 100)
	v.SetDefault("log.maxBackups", 5)
	v.SetDefault("log.maxAgeDays", 30)

	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "shuttle-checkin")
	v.SetDefault("jwt.accessTokenTTLMin", 24*60)

	v.SetDefault("session.driver", "memory")
	v.SetDefault("session.cookieName", "sid")

	v.SetDefault("redis.addr", "127.0.0.1:6379")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.adminEmail", "admin@example.com")
	v.SetDefault("seed.adminName", "Administrador")
	v.SetDefault("seed.adminPassword", "admin123")

	v.SetDefault("credential.n", 1<<15)
	v.SetDefault("credential.r", 8)
	v.SetDefault("credential.p", 1)
	v.SetDefault("credential.keyLen", 64)
	v.SetDefault("credential.saltLen", 16)
}

// Read loads path (YAML) over the defaults, then APP_* environment variables over
// both. A missing file is fine; an unreadable or malformed one is not.
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Session.Driver != "memory" && c.Session.Driver != "redis" {
		return nil, fmt.Errorf("session.driver must be memory or redis, got %q", c.Session.Driver)
	}
	return &c, nil
}

// Path resolves the config file: path, else $CONFIG_PATH, else the local default.
func Path(path string) string {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "./configs/config.local.yaml"
	}
	return path
}

// Load is Read for binaries: any error is fatal.
func Load(path string) *Config {
	c, err := Read(Path(path))
	if err != nil {
		log.Fatalf("%v", err)
	}
	return c
}

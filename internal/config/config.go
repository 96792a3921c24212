package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		Driver      string `mapstructure:"driver"`
		DSN         string `mapstructure:"dsn"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		Enabled          bool          `mapstructure:"enabled"`
		JWTSecret        string        `mapstructure:"jwt_secret"`
		TokenLifespan    time.Duration `mapstructure:"token_lifespan"`
		Issuer           string        `mapstructure:"issuer"`
		OwnerEmail       string        `mapstructure:"owner_email"`
		OwnerPassword    string        `mapstructure:"owner_password"`
		MaxLoginAttempts int           `mapstructure:"max_login_attempts"`
		LoginWindow      time.Duration `mapstructure:"login_window"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
	HTTP struct {
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
		DetailedStatus bool          `mapstructure:"detailed_status"`
	} `mapstructure:"http"`
}

// LoadConfig reads .env and config.yaml from paths (default ".") and applies env overrides.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err := godotenv.Load(filepath.Join(paths[0], ".env")); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err = bindEnv(v); err != nil {
		return cfg, err
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	// KAFKA_BROKERS arrives as a single comma separated string.
	if len(cfg.Kafka.Brokers) == 1 && strings.Contains(cfg.Kafka.Brokers[0], ",") {
		cfg.Kafka.Brokers = strings.Split(cfg.Kafka.Brokers[0], ",")
	}

	err = cfg.Validate()
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.auto_migrate", false)
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("auth.issuer", "portfolio-api")
	v.SetDefault("auth.max_login_attempts", 5)
	v.SetDefault("auth.login_window", 15*time.Minute)
	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("http.detailed_status", false)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"app.port":                "APP_PORT",
		"app.env":                 "APP_ENV",
		"db.driver":               "DB_DRIVER",
		"db.dsn":                  "DB_DSN",
		"db.auto_migrate":         "DB_AUTO_MIGRATE",
		"redis.addr":              "REDIS_ADDR",
		"redis.password":          "REDIS_PASSWORD",
		"kafka.brokers":           "KAFKA_BROKERS",
		"auth.enabled":            "AUTH_ENABLED",
		"auth.jwt_secret":         "JWT_SECRET",
		"auth.token_lifespan":     "TOKEN_LIFESPAN",
		"auth.issuer":             "JWT_ISSUER",
		"auth.owner_email":        "OWNER_EMAIL",
		"auth.owner_password":     "OWNER_PASSWORD",
		"auth.max_login_attempts": "MAX_LOGIN_ATTEMPTS",
		"auth.login_window":       "LOGIN_WINDOW",
		"cloudinary.cloud_name":   "CLOUDINARY_CLOUD_NAME",
		"cloudinary.api_key":      "CLOUDINARY_API_KEY",
		"cloudinary.api_secret":   "CLOUDINARY_API_SECRET",
		"tracing.otlp_endpoint":   "OTLP_ENDPOINT",
		"http.request_timeout":    "HTTP_REQUEST_TIMEOUT",
		"http.detailed_status":    "HTTP_DETAILED_STATUS",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.App.Port == "" {
		return errors.New("app port is required")
	}
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DSN == "" {
			return errors.New("db dsn is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown db driver %q", c.DB.Driver)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("jwt secret is required when auth is enabled")
	}
	if c.HTTP.RequestTimeout < 0 {
		return errors.New("http request timeout must not be negative")
	}
	return nil
}

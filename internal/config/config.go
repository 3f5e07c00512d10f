package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string         `yaml:"app_env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Auth     AuthConfig     `yaml:"auth"`

	// AttendanceLateAfter is the HH:MM (UTC) after which a check-in is late.
	AttendanceLateAfter string `yaml:"attendance_late_after"`
	MigrationsDir       string `yaml:"migrations_dir"`
}

type HTTPConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SSLMode    string `yaml:"ssl_mode"`
	MaxRetries int    `yaml:"max_retries"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type KafkaConfig struct {
	Brokers        []string      `yaml:"brokers"`
	LifecycleTopic string        `yaml:"lifecycle_topic"`
	ConsumerGroup  string        `yaml:"consumer_group"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

const devJWTSecret = "dev-secret-change-me"

// Load reads .env (when present), then the optional YAML file named by
// CONFIG_FILE, then environment variables. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		AppEnv: "development",
		HTTP: HTTPConfig{
			Port:         "3000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:       "localhost",
			Port:       "5432",
			SSLMode:    "disable",
			MaxRetries: 5,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			LifecycleTopic: "hr.record.lifecycle.v1",
			ConsumerGroup:  "hrms-audit-trail",
			PollInterval:   3 * time.Second,
		},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "hrms",
			Collection: "audit_trail",
		},
		Auth:                AuthConfig{TokenTTL: time.Hour},
		AttendanceLateAfter: "09:15",
		MigrationsDir:       "migrations",
	}
}

func (c *Config) applyEnv() error {
	setString(&c.AppEnv, "APP_ENV")
	setString(&c.HTTP.Port, "PORT")

	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.Redis.Addr, "REDIS_ADDR")

	if v := os.Getenv("KAFKA_BROKER"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	setString(&c.Kafka.LifecycleTopic, "KAFKA_LIFECYCLE_TOPIC")
	setString(&c.Kafka.ConsumerGroup, "KAFKA_CONSUMER_GROUP")

	setString(&c.Mongo.URI, "MONGODB_URI")
	setString(&c.Mongo.Database, "MONGODB_DATABASE")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.AttendanceLateAfter, "ATTENDANCE_LATE_AFTER")
	setString(&c.MigrationsDir, "MIGRATIONS_DIR")

	if err := setDuration(&c.Auth.TokenTTL, "JWT_TTL"); err != nil {
		return err
	}
	if err := setDuration(&c.Kafka.PollInterval, "OUTBOX_POLL_INTERVAL"); err != nil {
		return err
	}
	if v := os.Getenv("DB_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: DB_MAX_RETRIES: %w", err)
		}
		c.Database.MaxRetries = n
	}

	return nil
}

func (c *Config) validateAndNormalize() error {
	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("config: JWT_SECRET must be set in production")
		}
		c.Auth.JWTSecret = devJWTSecret
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: token ttl must be positive")
	}
	if _, err := time.Parse("15:04", c.AttendanceLateAfter); err != nil {
		return fmt.Errorf("config: attendance_late_after: %w", err)
	}
	if c.Database.MaxRetries < 1 {
		c.Database.MaxRetries = 1
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LateAfter returns the late check-in cutoff as an offset from midnight.
func (c *Config) LateAfter() time.Duration {
	t, _ := time.Parse("15:04", c.AttendanceLateAfter)
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// URL is the postgres:// form used by golang-migrate.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

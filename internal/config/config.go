package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Admin      Admin      `yaml:"admin"`
	Booking    Booking    `yaml:"booking"`
	Chatbot    Chatbot    `yaml:"chatbot"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"musafer_box"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	SessionTTL time.Duration `yaml:"session_ttl" env:"AUTH_SESSION_TTL" env-default:"72h"`
	BcryptCost int           `yaml:"bcrypt_cost" env-default:"10"`
}

// Admin is the account created at start-up when its email is not registered yet.
type Admin struct {
	Email    string `yaml:"email" env:"ADMIN_EMAIL" env-default:"admin@musaferbox.local"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-required:"true"`
	FullName string `yaml:"full_name" env-default:"Administrator"`
}

type Booking struct {
	PendingTTL      time.Duration `yaml:"pending_ttl" env:"BOOKING_PENDING_TTL" env-default:"48h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"1m"`
}

type Chatbot struct {
	KnowledgeBase string  `yaml:"knowledge_base" env:"CHATBOT_KNOWLEDGE_BASE"`
	Threshold     float64 `yaml:"threshold" env-default:"0.3"`
}

func MustLoad() *Config {
	// .env is optional, variables set in the environment win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %s", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &MissingFileError{Path: configPath}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &ReadError{Path: configPath, Err: err}
	}

	// logins compare lowercased emails
	cfg.Admin.Email = strings.ToLower(strings.TrimSpace(cfg.Admin.Email))

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"auth.session_ttl", cfg.Auth.SessionTTL},
		{"booking.pending_ttl", cfg.Booking.PendingTTL},
		{"booking.cleanup_interval", cfg.Booking.CleanupInterval},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return nil, &InvalidValueError{Path: configPath, Field: d.name, Value: d.value.String()}
		}
	}

	return &cfg, nil
}

type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return "config file does not exist: " + e.Path
}

type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "cannot read config " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

type InvalidValueError struct {
	Path  string
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return "invalid config " + e.Path + ": " + e.Field + " must be positive, got " + e.Value
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	Database Database `yaml:"database"`
	JWT      JWT      `yaml:"jwt"`
	Upload   Upload   `yaml:"upload"`
	SMTP     SMTP     `yaml:"smtp"`

	CORSOrigins string `yaml:"cors_origins"`
	RedisAddr   string `yaml:"redis_addr"`
	AMQPURL     string `yaml:"amqp_url"`
	TaxRate     string `yaml:"tax_rate"`
	LogLevel    string `yaml:"log_level"`
}

type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type JWT struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type Upload struct {
	Dir           string `yaml:"dir"`
	PublicPath    string `yaml:"public_path"`
	CloudinaryURL string `yaml:"cloudinary_url"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

func Default() *Config {
	return &Config{
		Port: "3001",
		Database: Database{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "restaurant",
			SSLMode: "disable",
		},
		JWT: JWT{TTL: 24 * time.Hour},
		Upload: Upload{
			Dir:        "public/uploads",
			PublicPath: "/uploads",
		},
		SMTP:        SMTP{Port: 587},
		CORSOrigins: "*",
		TaxRate:     "0.1",
		LogLevel:    "info",
	}
}

// Load layers defaults, the optional YAML file at path, a .env file and finally the
// process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	setString(&cfg.Port, "PORT")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_TTL: %w", err)
		}
		cfg.JWT.TTL = ttl
	}

	setString(&cfg.Upload.Dir, "UPLOAD_DIR")
	setString(&cfg.Upload.PublicPath, "PUBLIC_UPLOAD_PATH")
	setString(&cfg.Upload.CloudinaryURL, "CLOUDINARY_URL")

	setString(&cfg.SMTP.Host, "SMTP_HOST")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMTP_PORT: %w", err)
		}
		cfg.SMTP.Port = port
	}
	setString(&cfg.SMTP.Username, "SMTP_USERNAME")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.SMTP.From, "SMTP_FROM")

	setString(&cfg.CORSOrigins, "CORS_ORIGINS")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.AMQPURL, "AMQP_URL")
	setString(&cfg.TaxRate, "TAX_RATE")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	return nil
}

// Validate checks the settings the server cannot start without.
func (cfg *Config) Validate() error {
	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if cfg.JWT.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if _, err := strconv.ParseUint(cfg.Database.Port, 10, 32); err != nil {
		return fmt.Errorf("failed to parse database port %q", cfg.Database.Port)
	}
	return nil
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

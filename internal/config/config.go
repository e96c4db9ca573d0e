package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	// JWT carries one signing secret per portal. The original platform
	// dispatched on the role header to pick STUDENT_KEY, TEACHER_KEY or
	// ADMIN_KEY; here the three keys form a typed lookup table.
	JWT struct {
		StudentSecret     string `yaml:"student_secret" env:"JWT_STUDENT_SECRET"`
		TeacherSecret     string `yaml:"teacher_secret" env:"JWT_TEACHER_SECRET"`
		AdminSecret       string `yaml:"admin_secret" env:"JWT_ADMIN_SECRET"`
		StudentExpiration string `yaml:"student_expiration" env:"JWT_STUDENT_EXPIRATION"`
		TeacherExpiration string `yaml:"teacher_expiration" env:"JWT_TEACHER_EXPIRATION"`
		AdminExpiration   string `yaml:"admin_expiration" env:"JWT_ADMIN_EXPIRATION"`
		Issuer            string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a YAML file, then overrides it with
// environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "exambank"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Students keep the original 30-day token; staff tokens are shorter.
	config.JWT.StudentExpiration = "720h"
	config.JWT.TeacherExpiration = "168h"
	config.JWT.AdminExpiration = "24h"
	config.JWT.Issuer = "exambank.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures the configuration is usable
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.StudentSecret == "" || config.JWT.TeacherSecret == "" || config.JWT.AdminSecret == "" {
		return fmt.Errorf("a JWT secret is required for each of the student, teacher and admin roles")
	}

	for name, exp := range map[string]string{
		"student": config.JWT.StudentExpiration,
		"teacher": config.JWT.TeacherExpiration,
		"admin":   config.JWT.AdminExpiration,
	} {
		if _, err := time.ParseDuration(exp); err != nil {
			return fmt.Errorf("invalid JWT %s token expiration format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

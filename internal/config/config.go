// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Employer EmployerConfig
	ESign    ESignConfig
	Revisal  RevisalConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig holds database connection settings. Driver is either
// "postgres" or "sqlite"; for sqlite only Path is used.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string
}

// EmployerConfig identifies the filing employer on registry documents.
type EmployerConfig struct {
	CUI  string
	Name string
}

// ESignConfig holds the external e-signature provider credentials.
// An empty URL disables the provider.
type ESignConfig struct {
	DocuSignURL string
	DocuSignKey string
	CertSignURL string
	CertSignKey string
}

// RevisalConfig holds the labor-registry filing endpoint.
// An empty endpoint switches submissions to local mock mode.
type RevisalConfig struct {
	Endpoint string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev        bool
	Migrations bool
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "contracts"),
			Password: getEnv("DB_PASSWORD", "contracts123"),
			DBName:   getEnv("DB_NAME", "contracts"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "contracts.db"),
		},
		Employer: EmployerConfig{
			CUI:  getEnv("EMPLOYER_CUI", ""),
			Name: getEnv("EMPLOYER_NAME", ""),
		},
		ESign: ESignConfig{
			DocuSignURL: getEnv("DOCUSIGN_URL", ""),
			DocuSignKey: getEnv("DOCUSIGN_API_KEY", ""),
			CertSignURL: getEnv("CERTSIGN_URL", ""),
			CertSignKey: getEnv("CERTSIGN_API_KEY", ""),
		},
		Revisal: RevisalConfig{
			Endpoint: getEnv("REVISAL_ENDPOINT", ""),
		},
		App: AppConfig{
			Dev:        getEnvBool("DEV", true),
			Migrations: getEnvBool("MIGRATIONS", true),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

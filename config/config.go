package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultServerHost = "0.0.0.0"
	defaultServerPort = "5000"
	defaultDBPath     = "alimentos.db"
	defaultLogDir     = "logs"
	defaultLogFile    = "app.log"
	defaultLogLevel   = "info"
	defaultServerMode = "release"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost      string
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// ServerMode is the gin mode: release, debug or test
	ServerMode string

	// Database configuration
	DBPath string

	// Logging configuration
	LogDir   string
	LogFile  string
	LogLevel string
}

// New returns the fixed service configuration.
// Values are compiled in; nothing is read from the environment.
func New() *Config {
	return &Config{
		ServerHost:      defaultServerHost,
		ServerPort:      defaultServerPort,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		ServerMode:      defaultServerMode,
		DBPath:          defaultDBPath,
		LogDir:          defaultLogDir,
		LogFile:         defaultLogFile,
		LogLevel:        defaultLogLevel,
	}
}

// Addr returns the host:port the HTTP server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// LogPath returns the full path of the access log file
func (c *Config) LogPath() string {
	return filepath.Join(c.LogDir, c.LogFile)
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every required setting is present and sane
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ValidationError{Field: "config", Message: "is nil"}
	}
	if cfg.ServerPort == "" {
		return ValidationError{Field: "ServerPort", Message: "is required"}
	}
	if cfg.DBPath == "" {
		return ValidationError{Field: "DBPath", Message: "is required"}
	}
	if cfg.LogDir == "" || cfg.LogFile == "" {
		return ValidationError{Field: "LogFile", Message: "log directory and file name are required"}
	}

	switch cfg.ServerMode {
	case "release", "debug", "test":
	default:
		return ValidationError{
			Field:   "ServerMode",
			Message: fmt.Sprintf("invalid server mode %q (must be release, debug, or test)", cfg.ServerMode),
		}
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ValidationError{
			Field:   "LogLevel",
			Message: fmt.Sprintf("invalid log level %q (must be debug, info, warn, or error)", cfg.LogLevel),
		}
	}

	return nil
}

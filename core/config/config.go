package config

import (
	"fmt"
	"sync"

	"romantic-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host  string
	Port  int
	Debug bool
}

type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret      string
	SessionMinutes int
	AdminEmail     string
	AdminPassword  string
}

type SMTPConfig struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	From   string
}

// Configured reports whether a mail transport is available. Absence is an
// expected state, not an error: reminder emails are skipped instead of sent.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

type ReminderConfig struct {
	// Recipient is the single address all reminder emails go to.
	Recipient string
}

type UploadsConfig struct {
	Dir string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Reminder ReminderConfig
	Uploads  UploadsConfig
}

var (
	mu       sync.RWMutex
	instance *Config
)

// Load reads .env (when present) and the ROMANTIC_*/SMTP_* environment into
// the process-wide configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("Config:Load:NoDotEnv")
	}

	v := viper.New()
	v.AutomaticEnv()

	bindings := map[string]string{
		"port":            "PORT",
		"host":            "HOST",
		"debug":           "ROMANTIC_DEBUG",
		"db_path":         "ROMANTIC_DB_PATH",
		"jwt_secret":      "ROMANTIC_JWT_SECRET",
		"session_minutes": "ROMANTIC_SESSION_MINUTES",
		"admin_email":     "ROMANTIC_ADMIN_EMAIL",
		"admin_password":  "ROMANTIC_ADMIN_PASSWORD",
		"uploads_dir":     "ROMANTIC_UPLOADS_DIR",
		"reminder_to":     "ROMANTIC_REMINDER_TO",
		"smtp_host":       "SMTP_HOST",
		"smtp_port":       "SMTP_PORT",
		"smtp_secure":     "SMTP_SECURE",
		"smtp_user":       "SMTP_USER",
		"smtp_pass":       "SMTP_PASS",
		"smtp_from":       "SMTP_FROM",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetDefault("port", 4000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("debug", false)
	v.SetDefault("db_path", "data/romance.db")
	v.SetDefault("jwt_secret", "super-romantic-secret")
	v.SetDefault("session_minutes", 240)
	v.SetDefault("admin_email", "amor@mimujer.local")
	v.SetDefault("admin_password", "nuestrosecreto")
	v.SetDefault("uploads_dir", "uploads")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_from", "no-reply@mimujer.local")

	cfg := &Config{
		Server: ServerConfig{
			Host:  v.GetString("host"),
			Port:  v.GetInt("port"),
			Debug: v.GetBool("debug"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("db_path"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("jwt_secret"),
			SessionMinutes: v.GetInt("session_minutes"),
			AdminEmail:     v.GetString("admin_email"),
			AdminPassword:  v.GetString("admin_password"),
		},
		SMTP: SMTPConfig{
			Host:   v.GetString("smtp_host"),
			Port:   v.GetInt("smtp_port"),
			Secure: v.GetBool("smtp_secure"),
			User:   v.GetString("smtp_user"),
			Pass:   v.GetString("smtp_pass"),
			From:   v.GetString("smtp_from"),
		},
		Reminder: ReminderConfig{
			Recipient: v.GetString("reminder_to"),
		},
		Uploads: UploadsConfig{
			Dir: v.GetString("uploads_dir"),
		},
	}

	// Reminders default to the seeded user's address, as the original deployment did.
	if cfg.Reminder.Recipient == "" {
		cfg.Reminder.Recipient = cfg.Auth.AdminEmail
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded configuration. Panics when Load has not run.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Load")
	}
	return cfg
}

// GetSafe returns the loaded configuration and whether it is initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set installs a configuration directly. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}

// Package config loads service settings from defaults, an optional YAML file,
// an optional .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderSMTP   = "smtp"
	ProviderSES    = "ses"
	ProviderResend = "resend"
	ProviderStdout = "stdout"
)

var (
	ErrMissingSettings = errors.New("missing required settings")
	ErrInvalidSettings = errors.New("invalid settings")
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Mail       MailConfig       `yaml:"mail"`
	Dispatch   DispatchConfig   `yaml:"dispatch"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`

	invalid []string
}

type HTTPConfig struct {
	Port           string   `yaml:"port"`
	BodyLimit      string   `yaml:"body_limit"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	URL            string `yaml:"url"`
	MigrateOnStart bool   `yaml:"migrate_on_start"`
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

type MailConfig struct {
	Provider     string       `yaml:"provider"`
	From         string       `yaml:"from"`
	Subject      string       `yaml:"subject"`
	TemplateFile string       `yaml:"template_file"`
	SMTP         SMTPConfig   `yaml:"smtp"`
	SES          SESConfig    `yaml:"ses"`
	Resend       ResendConfig `yaml:"resend"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SESConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type ResendConfig struct {
	APIKey string `yaml:"api_key"`
}

type DispatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

type ValidationConfig struct {
	CheckMX   bool          `yaml:"check_mx"`
	ProbeSMTP bool          `yaml:"probe_smtp"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the optional YAML file at path (skipped when empty), then the
// .env file if present, then the environment. Environment values always win.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	_ = godotenv.Load()

	cfg.applyEnvVars()
	cfg.fillDerived()

	return cfg, nil
}

// Validate reports every required setting that is missing for the selected provider.
func (c *Config) Validate() error {
	if len(c.invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(c.invalid, ", "))
	}

	var missing []string

	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	switch c.Mail.Provider {
	case ProviderSMTP:
		if c.Mail.SMTP.Username == "" {
			missing = append(missing, "EMAIL_USER")
		}
		if c.Mail.SMTP.Password == "" {
			missing = append(missing, "EMAIL_PASS")
		}
	case ProviderSES:
		if c.Mail.SES.Region == "" {
			missing = append(missing, "SES_REGION")
		}
		if c.Mail.From == "" {
			missing = append(missing, "MAIL_FROM")
		}
	case ProviderResend:
		if c.Mail.Resend.APIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
		if c.Mail.From == "" {
			missing = append(missing, "MAIL_FROM")
		}
	case ProviderStdout:
	default:
		return fmt.Errorf("unknown mail provider %q", c.Mail.Provider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSettings, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.HTTP.Port = "5000"
	c.HTTP.BodyLimit = "10M"
	c.HTTP.AllowedOrigins = []string{"*"}
	c.Database.MigrateOnStart = true
	c.Mail.Provider = ProviderSMTP
	c.Mail.SMTP.Host = "smtp.gmail.com"
	c.Mail.SMTP.Port = 587
	c.Dispatch.Concurrency = 16
	c.Validation.CheckMX = true
	c.Validation.CacheTTL = time.Hour
	c.Logging.Level = "info"
}

func (c *Config) applyEnvVars() {
	setString(&c.HTTP.Port, "PORT")
	setString(&c.HTTP.BodyLimit, "HTTP_BODY_LIMIT")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.HTTP.AllowedOrigins = splitList(v)
	}

	setString(&c.Database.URL, "DATABASE_URL")
	c.setBool(&c.Database.MigrateOnStart, "DATABASE_MIGRATE")
	setString(&c.Redis.URL, "REDIS_URL")

	if v := os.Getenv("MAIL_PROVIDER"); v != "" {
		c.Mail.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	setString(&c.Mail.From, "MAIL_FROM")
	setString(&c.Mail.Subject, "MAIL_SUBJECT")
	setString(&c.Mail.TemplateFile, "MAIL_TEMPLATE_FILE")
	setString(&c.Mail.SMTP.Host, "SMTP_HOST")
	c.setInt(&c.Mail.SMTP.Port, "SMTP_PORT")
	setString(&c.Mail.SMTP.Username, "EMAIL_USER")
	setString(&c.Mail.SMTP.Password, "EMAIL_PASS")
	setString(&c.Mail.SES.Region, "SES_REGION")
	setString(&c.Mail.SES.AccessKeyID, "SES_ACCESS_KEY_ID")
	setString(&c.Mail.SES.SecretAccessKey, "SES_SECRET_ACCESS_KEY")
	setString(&c.Mail.Resend.APIKey, "RESEND_API_KEY")

	c.setInt(&c.Dispatch.Concurrency, "DISPATCH_CONCURRENCY")

	c.setBool(&c.Validation.CheckMX, "VALIDATION_CHECK_MX")
	c.setBool(&c.Validation.ProbeSMTP, "VALIDATION_PROBE_SMTP")
	var ttlSeconds int
	c.setInt(&ttlSeconds, "VALIDATION_CACHE_TTL_SECONDS")
	if ttlSeconds > 0 {
		c.Validation.CacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	setString(&c.Logging.Level, "LOG_LEVEL")
}

func (c *Config) fillDerived() {
	if c.Mail.From == "" {
		c.Mail.From = c.Mail.SMTP.Username
	}
	if c.Dispatch.Concurrency <= 0 {
		c.Dispatch.Concurrency = 16
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// setInt and setBool record unparsable values so Validate can refuse them.
func (c *Config) setInt(dst *int, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s=%q is not an integer", key, raw))
		return
	}
	*dst = value
}

func (c *Config) setBool(dst *bool, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s=%q is not a boolean", key, raw))
		return
	}
	*dst = value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
    "fmt"
    "strings"
    "time"

    "github.com/caarlos0/env/v11"
)

// Local development credentials, only applied when DB_DRIVER=sqlite.
const (
    DevJWTSecret     = "supersecret_change_me"
    DevAdminPassword = "admin123"
)

type Config struct {
    Port string `env:"PORT" envDefault:"5000"`

    // Database
    DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | sqlite
    DBHost     string `env:"DB_HOST" envDefault:"localhost"`
    DBPort     string `env:"DB_PORT" envDefault:"5432"`
    DBUser     string `env:"DB_USER" envDefault:"postgres"`
    DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
    DBName     string `env:"DB_NAME" envDefault:"portfolio"`
    DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
    SQLitePath string `env:"SQLITE_PATH" envDefault:"portfolio.db"`

    // Mail relay
    EmailUser       string `env:"EMAIL_USER"`
    EmailPass       string `env:"EMAIL_PASS"`
    SMTPHost        string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
    SMTPPort        string `env:"SMTP_PORT" envDefault:"587"`
    ContactNotifyTo string `env:"CONTACT_NOTIFY_TO"` // defaults to EmailUser

    // none | strict
    ContactValidation string `env:"CONTACT_VALIDATION" envDefault:"none"`

    // Admin write path. JWT_SECRET and ADMIN_PASSWORD are required with postgres.
    JWTSecret          string `env:"JWT_SECRET"`
    JWTExpiresIn       int    `env:"JWT_EXPIRES_IN" envDefault:"60"` // minutes
    AdminEmail         string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
    AdminPassword      string `env:"ADMIN_PASSWORD"`
    AdminFullName      string `env:"ADMIN_FULL_NAME" envDefault:"Administrator"`
    RequireAdminWrites bool   `env:"REQUIRE_ADMIN_WRITES" envDefault:"false"`

    CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, fmt.Errorf("parse env: %w", err)
    }
    cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
    cfg.ContactValidation = strings.ToLower(strings.TrimSpace(cfg.ContactValidation))
    switch cfg.DBDriver {
    case "postgres", "sqlite":
    default:
        return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
    }
    switch cfg.ContactValidation {
    case "none", "strict":
    default:
        return nil, fmt.Errorf("unsupported CONTACT_VALIDATION %q", cfg.ContactValidation)
    }
    if cfg.DBDriver == "postgres" {
        if cfg.JWTSecret == "" || cfg.AdminPassword == "" {
            return nil, fmt.Errorf("JWT_SECRET and ADMIN_PASSWORD must be set when DB_DRIVER=postgres")
        }
        if cfg.JWTSecret == DevJWTSecret {
            return nil, fmt.Errorf("JWT_SECRET must not be the development default when DB_DRIVER=postgres")
        }
        return cfg, nil
    }
    if cfg.JWTSecret == "" {
        cfg.JWTSecret = DevJWTSecret
    }
    if cfg.AdminPassword == "" {
        cfg.AdminPassword = DevAdminPassword
    }
    return cfg, nil
}

// NotifyAddress is where contact notifications are delivered.
func (c *Config) NotifyAddress() string {
    if c.ContactNotifyTo != "" {
        return c.ContactNotifyTo
    }
    return c.EmailUser
}

func (c *Config) TokenTTL() time.Duration {
    if c.JWTExpiresIn <= 0 {
        return 60 * time.Minute
    }
    return time.Duration(c.JWTExpiresIn) * time.Minute
}

package database

import (
    "fmt"
    "time"

    "github.com/glebarez/sqlite"
    "gorm.io/driver/postgres"
    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/config"
    "github.com/zaqqye/portfolio_backend/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.DBDriver {
    case "sqlite":
        dialector = sqlite.Open(cfg.SQLitePath)
    default:
        dsn := fmt.Sprintf(
            "host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
            cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
        )
        dialector = postgres.Open(dsn)
    }
    return Open(dialector)
}

// Open wraps gorm.Open with UTC timestamps so created_at ordering is consistent across drivers.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
    return gorm.Open(dialector, &gorm.Config{
        NowFunc: func() time.Time { return time.Now().UTC() },
    })
}

func Migrate(db *gorm.DB) error {
    return db.AutoMigrate(
        &models.Contact{},
        &models.Project{},
        &models.Skill{},
        &models.User{},
    )
}

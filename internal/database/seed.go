package database

import (
    "errors"
    "log"

    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/config"
    "github.com/zaqqye/portfolio_backend/internal/models"
    "github.com/zaqqye/portfolio_backend/internal/utils"
)

var ErrAdminPasswordRequired = errors.New("ADMIN_PASSWORD must be set to seed an admin on postgres")

// SeedAdmin creates the first admin account when the users table is empty.
// Outside postgres an unset password falls back to the development default.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
    var count int64
    if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    email := cfg.AdminEmail
    if email == "" {
        email = "admin@example.com"
    }
    fullName := cfg.AdminFullName
    if fullName == "" {
        fullName = "Administrator"
    }
    password := cfg.AdminPassword
    if password == "" {
        if cfg.DBDriver == "postgres" {
            return ErrAdminPasswordRequired
        }
        password = config.DevAdminPassword
    }
    hashed, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    admin := models.User{
        FullName: fullName,
        Email:    email,
        Password: hashed,
        Active:   true,
    }
    if err := db.Create(&admin).Error; err != nil {
        return err
    }
    log.Println("Seeded initial admin:", email)
    return nil
}

package main

import (
    "log"
    "os"

    "github.com/joho/godotenv"

    "github.com/gin-gonic/gin"

    "github.com/zaqqye/portfolio_backend/internal/config"
    "github.com/zaqqye/portfolio_backend/internal/database"
    "github.com/zaqqye/portfolio_backend/internal/mailer"
    "github.com/zaqqye/portfolio_backend/internal/routes"
    "github.com/zaqqye/portfolio_backend/internal/ws"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("config: %v", err)
    }

    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatalf("database connection failed: %v", err)
    }
    log.Printf("Connected to %s database", cfg.DBDriver)

    if err := database.Migrate(db); err != nil {
        log.Fatalf("database migration failed: %v", err)
    }

    if err := database.SeedAdmin(db, cfg); err != nil {
        log.Fatalf("admin seed failed: %v", err)
    }

    if cfg.EmailUser == "" || cfg.EmailPass == "" {
        log.Println("EMAIL_USER/EMAIL_PASS not set; contact submissions will be stored but reported as failed")
    }
    notifier := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

    hub := ws.NewContactHub()
    go hub.Run()

    r := gin.Default()
    routes.Register(r, db, cfg, notifier, hub)

    port := cfg.Port
    if port == "" {
        port = "5000"
    }
    log.Printf("Server running on port %s", port)

    if err := r.Run(":" + port); err != nil {
        log.Println("server exited with error:", err)
        os.Exit(1)
    }
}

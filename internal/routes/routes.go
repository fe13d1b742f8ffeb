package routes

import (
    "net/http"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/config"
    "github.com/zaqqye/portfolio_backend/internal/controllers"
    "github.com/zaqqye/portfolio_backend/internal/mailer"
    "github.com/zaqqye/portfolio_backend/internal/middleware"
    "github.com/zaqqye/portfolio_backend/internal/services/contact"
    "github.com/zaqqye/portfolio_backend/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier mailer.Notifier, hub *ws.ContactHub) {
    r.Use(corsMiddleware(cfg.CORSOrigins))

    // Controllers
    contactSvc := contact.NewService(db, notifier, contact.Policy(cfg.ContactValidation), cfg.EmailUser, cfg.NotifyAddress())
    if hub != nil {
        contactSvc.Publisher = hub
    }
    authCtrl := &controllers.AuthController{DB: db, JWTSecret: cfg.JWTSecret, ExpiresIn: cfg.TokenTTL()}
    contactCtrl := &controllers.ContactController{DB: db, Service: contactSvc}
    projectCtrl := &controllers.ProjectController{DB: db}
    skillCtrl := &controllers.SkillController{DB: db}

    authMW := middleware.AuthMiddleware(db, middleware.AuthConfig{JWTSecret: cfg.JWTSecret})
    adminWrites := middleware.When(cfg.RequireAdminWrites, authMW)

    r.GET("/healthz", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok"})
    })

    // Public
    api := r.Group("/api")
    {
        api.GET("/projects", projectCtrl.ListProjects)
        api.POST("/projects", adminWrites, projectCtrl.CreateProject)

        api.GET("/skills", skillCtrl.ListSkills)
        api.POST("/skills", adminWrites, skillCtrl.CreateSkill)

        api.POST("/contact", contactCtrl.Submit)

        api.POST("/auth/login", authCtrl.Login)
    }

    // Admin-only
    admin := r.Group("/api/admin", authMW)
    {
        admin.GET("/me", authCtrl.Me)
        admin.GET("/contacts", contactCtrl.List)
        admin.GET("/contacts/ws", ws.ContactFeedHandler(hub))
    }
}

func corsMiddleware(origins []string) gin.HandlerFunc {
    cc := cors.DefaultConfig()
    cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
    allowAll := len(origins) == 0
    for _, o := range origins {
        if o == "*" {
            allowAll = true
        }
    }
    if allowAll {
        cc.AllowAllOrigins = true
    } else {
        cc.AllowOrigins = origins
    }
    return cors.New(cc)
}

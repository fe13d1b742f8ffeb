package controllers

import (
    "net/http"
    "strings"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/middleware"
    "github.com/zaqqye/portfolio_backend/internal/models"
    "github.com/zaqqye/portfolio_backend/internal/utils"
)

type AuthController struct {
    DB        *gorm.DB
    JWTSecret string
    ExpiresIn time.Duration
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    var user models.User
    if err := a.DB.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }
    if !user.Active || !utils.CheckPassword(user.Password, req.Password) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }

    token, err := a.IssueToken(user)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "access_token": token,
        "token_type":   "Bearer",
        "expires_in":   int(a.ExpiresIn.Seconds()),
    })
}

func (a *AuthController) Me(c *gin.Context) {
    uVal, _ := c.Get("user")
    user := uVal.(models.User)
    c.JSON(http.StatusOK, gin.H{
        "id":         user.ID,
        "email":      user.Email,
        "full_name":  user.FullName,
        "active":     user.Active,
        "created_at": user.CreatedAt,
    })
}

// IssueToken signs an HS256 access token for user.
func (a *AuthController) IssueToken(user models.User) (string, error) {
    now := time.Now().UTC()
    ttl := a.ExpiresIn
    if ttl <= 0 {
        ttl = 60 * time.Minute
    }
    claims := middleware.Claims{
        UserID: user.ID,
        Email:  user.Email,
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    middleware.Issuer,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
            Subject:   user.ID,
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.JWTSecret))
}

package controllers

import (
    "errors"
    "log"
    "net/http"
    "strconv"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/models"
    "github.com/zaqqye/portfolio_backend/internal/services/contact"
)

const (
    defaultContactListLimit = 100
    maxContactListLimit     = 500
)

type ContactController struct {
    DB      *gorm.DB
    Service *contact.Service
}

// Submit stores a contact message and emails the operator. Partial success
// (stored but not emailed) is still reported as a failure.
func (cc *ContactController) Submit(c *gin.Context) {
    var req contact.Submission
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
        return
    }

    res, err := cc.Service.Submit(c.Request.Context(), req)
    if err != nil {
        if errors.Is(err, contact.ErrInvalidSubmission) {
            c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
            return
        }
        log.Printf("contact submit failed (persisted=%v notified=%v): %v", res.Persisted, res.Notified, err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending message"})
        return
    }
    c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// List returns stored submissions, newest first. Admin only.
func (cc *ContactController) List(c *gin.Context) {
    limit := defaultContactListLimit
    if v := c.Query("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            limit = min(n, maxContactListLimit)
        }
    }
    var contacts []models.Contact
    if err := cc.DB.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&contacts).Error; err != nil {
        log.Printf("list contacts: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"data": contacts, "meta": gin.H{"limit": limit, "count": len(contacts)}})
}

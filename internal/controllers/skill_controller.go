package controllers

import (
    "log"
    "net/http"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/models"
)

type SkillController struct {
    DB *gorm.DB
}

type createSkillRequest struct {
    Name  string     `json:"name" binding:"required"`
    Level SkillLevel `json:"level" binding:"required"`
}

func (sc *SkillController) ListSkills(c *gin.Context) {
    skills := []models.Skill{}
    if err := sc.DB.Order("created_at ASC").Order("id ASC").Find(&skills).Error; err != nil {
        log.Printf("list skills: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching skills"})
        return
    }
    c.JSON(http.StatusOK, skills)
}

func (sc *SkillController) CreateSkill(c *gin.Context) {
    var req createSkillRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        log.Printf("create skill: bind: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating skill"})
        return
    }
    s := models.Skill{Name: req.Name, Level: req.Level.String()}
    if err := sc.DB.Create(&s).Error; err != nil {
        log.Printf("create skill: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating skill"})
        return
    }
    c.JSON(http.StatusCreated, s)
}

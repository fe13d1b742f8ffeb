package controllers

import (
    "errors"
    "log"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "gorm.io/datatypes"
    "gorm.io/gorm"

    "github.com/zaqqye/portfolio_backend/internal/models"
)

type ProjectController struct {
    DB *gorm.DB
}

// createProjectRequest accepts the listing field names as well as the short
// names (image, tech, demo, github) older portfolio front ends send.
type createProjectRequest struct {
    Title       string   `json:"title"`
    Description string   `json:"description"`
    ImageURL    string   `json:"imageUrl"`
    TechTags    []string `json:"techTags"`
    DemoURL     string   `json:"demoUrl"`
    GithubURL   string   `json:"githubUrl"`

    Image  string   `json:"image"`
    Tech   []string `json:"tech"`
    Demo   string   `json:"demo"`
    Github string   `json:"github"`
}

func (r *createProjectRequest) resolve() error {
    if r.ImageURL == "" {
        r.ImageURL = r.Image
    }
    if r.TechTags == nil {
        r.TechTags = r.Tech
    }
    if r.DemoURL == "" {
        r.DemoURL = r.Demo
    }
    if r.GithubURL == "" {
        r.GithubURL = r.Github
    }

    var missing []string
    if r.Title == "" {
        missing = append(missing, "title")
    }
    if r.Description == "" {
        missing = append(missing, "description")
    }
    if r.ImageURL == "" {
        missing = append(missing, "imageUrl")
    }
    if len(missing) > 0 {
        return errors.New("missing required fields: " + strings.Join(missing, ", "))
    }
    return nil
}

func (pc *ProjectController) ListProjects(c *gin.Context) {
    projects := []models.Project{}
    // id breaks ties between projects created within the same clock tick
    if err := pc.DB.Order("created_at DESC").Order("id DESC").Find(&projects).Error; err != nil {
        log.Printf("list projects: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching projects"})
        return
    }
    c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
    var req createProjectRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        log.Printf("create project: bind: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating project"})
        return
    }
    if err := req.resolve(); err != nil {
        log.Printf("create project: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating project"})
        return
    }
    tags := make(datatypes.JSONSlice[string], 0, len(req.TechTags))
    for _, t := range req.TechTags {
        if t = strings.TrimSpace(t); t != "" {
            tags = append(tags, t)
        }
    }
    p := models.Project{
        Title:       req.Title,
        Description: req.Description,
        ImageURL:    req.ImageURL,
        TechTags:    tags,
        DemoURL:     req.DemoURL,
        GithubURL:   req.GithubURL,
    }
    if err := pc.DB.Create(&p).Error; err != nil {
        log.Printf("create project: %v", err)
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating project"})
        return
    }
    c.JSON(http.StatusCreated, p)
}

package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/datatypes"
    "gorm.io/gorm"
)

type Project struct {
    ID          string                      `gorm:"type:uuid;primaryKey" json:"id"`
    Title       string                      `gorm:"not null" json:"title"`
    Description string                      `gorm:"type:text;not null" json:"description"`
    ImageURL    string                      `gorm:"not null" json:"imageUrl"`
    TechTags    datatypes.JSONSlice[string] `json:"techTags"`
    DemoURL     string                      `json:"demoUrl,omitempty"`
    GithubURL   string                      `json:"githubUrl,omitempty"`
    CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
    if p.ID == "" {
        p.ID = uuid.NewString()
    }
    if p.TechTags == nil {
        p.TechTags = datatypes.JSONSlice[string]{}
    }
    return nil
}

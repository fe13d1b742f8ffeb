package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Skill is listed in insertion order (created_at ascending).
type Skill struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name      string    `gorm:"not null" json:"name"`
    Level     string    `gorm:"not null" json:"level"`
    CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
    if s.ID == "" {
        s.ID = uuid.NewString()
    }
    return nil
}

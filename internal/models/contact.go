package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Contact is one contact-form submission. Rows are append-only; duplicates are allowed.
type Contact struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name      string    `gorm:"type:text" json:"name"`
    Email     string    `gorm:"type:text" json:"email"`
    Message   string    `gorm:"type:text" json:"message"`
    CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
    if c.ID == "" {
        c.ID = uuid.NewString()
    }
    return nil
}

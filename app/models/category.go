package models

import (
	"time"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        Text      `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description Text      `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Products    []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

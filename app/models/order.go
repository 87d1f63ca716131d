package models

import (
	"time"
)

const (
	OrderTypeBuy  = "buy"
	OrderTypeRent = "rent"
)

type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product"`
	Product     *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	FullName    string    `gorm:"size:255;not null" json:"full_name"`
	CompanyName string    `gorm:"size:300" json:"company_name"`
	Email       string    `gorm:"size:254;not null" json:"email"`
	Phone       string    `gorm:"size:30;not null" json:"phone"`
	OrderType   string    `gorm:"size:15;not null;index" json:"order_type"`
	Message     string    `gorm:"type:text" json:"message"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

type ContactMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"size:50;not null" json:"full_name"`
	Email       string    `gorm:"size:254;not null" json:"email"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

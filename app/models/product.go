package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CategoryID       uint      `gorm:"not null;index" json:"product_category"`
	Category         *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Name             Text      `gorm:"embedded;embeddedPrefix:product_name_" json:"product_name"`
	Description      Text      `gorm:"embedded;embeddedPrefix:product_description_" json:"product_description"`
	DeliveryContents Text      `gorm:"embedded;embeddedPrefix:delivery_contents_" json:"delivery_contents"`
	Quantity         int       `gorm:"column:product_quantity;not null" json:"product_quantity"`

	// specs
	Speed           int             `gorm:"column:product_speed" json:"product_speed"`
	WeightLifting   string          `gorm:"column:product_weight_lifting;size:30" json:"product_weight_lifting"`
	WeightKg        decimal.Decimal `gorm:"type:decimal(10,2)" json:"weight_kg"`
	DimensionsCm    string          `gorm:"size:50" json:"dimensions_cm"`
	ProtectionLevel string          `gorm:"size:10" json:"protection_level"`

	// features
	VoiceRecognition bool `json:"voice_recognition"`
	FrontLight       bool `json:"front_light"`
	CarryingStrap    bool `json:"carrying_strap"`

	// hardware
	Processor      string `gorm:"size:255" json:"processor"`
	CamerasSensors string `gorm:"size:255" json:"cameras_sensors"`
	CameraSpecs    string `gorm:"size:255" json:"camera_specs"`

	// connectivity
	Wifi             bool   `json:"wifi"`
	BluetoothVersion string `gorm:"size:10" json:"bluetooth_version"`

	// battery
	BatteryLifeHours  decimal.Decimal `gorm:"type:decimal(6,2)" json:"battery_life_hours"`
	BatteryModel      string          `gorm:"size:100" json:"battery_model"`
	BatteryCapacity   string          `gorm:"size:100" json:"battery_capacity"`
	BatteryProtection bool            `json:"battery_protection"`

	IsAvailableForRent bool `gorm:"index" json:"is_available_for_rent"`
	IsAvailableForSale bool `gorm:"index" json:"is_available_for_sale"`

	ProductImage string `gorm:"size:255" json:"product_image"`
	LandingImage string `gorm:"size:255" json:"landing_image"`
	Slug         string `gorm:"size:255;not null;uniqueIndex" json:"slug"`

	Images              []ProductImage       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Feature             *ProductFeature      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"features,omitempty"`
	Highlight           *Highlight           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"highlights,omitempty"`
	AdditionalDevices   []AdditionalDevice   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"additionals,omitempty"`
	NavigationShowcases []NavigationShowcase `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"navigation_showcase,omitempty"`
	FeatureCards        []ProductFeatureCard `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"feature_cards,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"-"`
	Image     string    `gorm:"size:255" json:"image"`
	AltText   string    `gorm:"size:100" json:"alt_text"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductFeature struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	ProductID  uint               `gorm:"not null;uniqueIndex" json:"-"`
	Title      Text               `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Subtitle   Text               `gorm:"embedded;embeddedPrefix:subtitle_" json:"subtitle"`
	Img1       string             `gorm:"size:255" json:"img1"`
	Img2       string             `gorm:"size:255" json:"img2"`
	Img3       string             `gorm:"size:255" json:"img3"`
	Paragraphs []FeatureParagraph `gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE" json:"paragraphs,omitempty"`
}

type FeatureParagraph struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	FeatureID uint `gorm:"not null;index" json:"-"`
	Before    Text `gorm:"embedded;embeddedPrefix:before_" json:"before"`
	Highlight Text `gorm:"embedded;embeddedPrefix:highlight_" json:"highlight"`
	After     Text `gorm:"embedded;embeddedPrefix:after_" json:"after"`
	Position  int  `json:"position"`
}

type Highlight struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;uniqueIndex" json:"-"`
	Title     Text            `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Slides    []HighlightItem `gorm:"foreignKey:HighlightID;constraint:OnDelete:CASCADE" json:"slides,omitempty"`
}

type HighlightItem struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	HighlightID   uint   `gorm:"not null;index" json:"-"`
	Image         string `gorm:"size:255" json:"image"`
	ImageDuration int    `json:"image_duration"`
	Position      int    `json:"position"`
}

type AdditionalDevice struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProductID   uint   `gorm:"not null;index" json:"-"`
	Title       Text   `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Description Text   `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Image       string `gorm:"size:255" json:"image"`
	Position    int    `json:"position"`
}

type NavigationShowcase struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProductID   uint   `gorm:"not null;index" json:"-"`
	Title       Text   `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Description Text   `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Image       string `gorm:"size:255" json:"image"`
}

type ProductFeatureCard struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProductID uint `gorm:"not null;index" json:"-"`
	Title     Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Desc      Text `gorm:"embedded;embeddedPrefix:desc_" json:"desc"`
}

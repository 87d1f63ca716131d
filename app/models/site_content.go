package models

import "time"

// SingletonID is the only primary key a singleton row is ever stored under.
const SingletonID uint = 1

type AboutCompany struct {
	ID               uint              `gorm:"primaryKey" json:"-"`
	Title            Text              `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Subtitle         Text              `gorm:"embedded;embeddedPrefix:subtitle_" json:"subtitle"`
	MainParagraph    Text              `gorm:"embedded;embeddedPrefix:main_paragraph_" json:"main_paragraph"`
	SectionTitle     Text              `gorm:"embedded;embeddedPrefix:section_title_" json:"section_title"`
	SectionSubtitle  Text              `gorm:"embedded;embeddedPrefix:section_subtitle_" json:"section_subtitle"`
	Conclusion       Text              `gorm:"embedded;embeddedPrefix:conclusion_" json:"conclusion"`
	DepthHeroTitle   Text              `gorm:"embedded;embeddedPrefix:depth_hero_title_" json:"depth_hero_title"`
	Image            string            `gorm:"size:255" json:"image"`
	DepthHeroImage   string            `gorm:"size:255" json:"depth_hero_image"`
	Features         []AboutFeature    `gorm:"foreignKey:AboutCompanyID;constraint:OnDelete:CASCADE" json:"features"`
	FeaturedServices []FeaturedService `gorm:"foreignKey:AboutCompanyID;constraint:OnDelete:CASCADE" json:"featured_services"`
	CountStats       []CountStat       `gorm:"foreignKey:AboutCompanyID;constraint:OnDelete:CASCADE" json:"count_stats"`
	FeatureList      []AboutFeatureCard `gorm:"foreignKey:AboutCompanyID;constraint:OnDelete:CASCADE" json:"features_list"`
	Services         []AboutService    `gorm:"foreignKey:AboutCompanyID;constraint:OnDelete:CASCADE" json:"services_list"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type AboutFeature struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	AboutCompanyID uint `gorm:"not null;index" json:"-"`
	Text           Text `gorm:"embedded;embeddedPrefix:text_" json:"text"`
	Position       int  `json:"position"`
}

type FeaturedService struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	AboutCompanyID uint `gorm:"not null;index" json:"-"`
	Title          Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Desc           Text `gorm:"embedded;embeddedPrefix:desc_" json:"desc"`
	Position       int  `json:"position"`
}

type CountStat struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	AboutCompanyID uint   `gorm:"not null;index" json:"-"`
	Value          string `gorm:"size:50" json:"value"`
	Title          Text   `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Desc           Text   `gorm:"embedded;embeddedPrefix:desc_" json:"desc"`
	Position       int    `json:"position"`
}

type AboutFeatureCard struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	AboutCompanyID uint `gorm:"not null;index" json:"-"`
	Title          Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Desc           Text `gorm:"embedded;embeddedPrefix:desc_" json:"desc"`
	Position       int  `json:"position"`
}

type AboutService struct {
	ID             uint `gorm:"primaryKey" json:"-"`
	AboutCompanyID uint `gorm:"not null;index" json:"-"`
	Title          Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Desc           Text `gorm:"embedded;embeddedPrefix:desc_" json:"desc"`
	Position       int  `json:"position"`
}

type ContactInfo struct {
	ID        uint               `gorm:"primaryKey" json:"-"`
	Title     Text               `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Subtitle  Text               `gorm:"embedded;embeddedPrefix:subtitle_" json:"subtitle"`
	MapSrc    string             `gorm:"size:1000" json:"map_src"`
	Locations []ShowroomLocation `gorm:"many2many:contact_info_locations;constraint:OnDelete:CASCADE" json:"locations"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type ShowroomLocation struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	City    string  `gorm:"size:100" json:"city"`
	Address string  `gorm:"size:255" json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	MapSrc  string  `gorm:"size:1000" json:"map_src"`
}

type RoboticsHero struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Image     string    `gorm:"size:255" json:"image"`
	ImageAlt  string    `gorm:"size:255" json:"image_alt"`
	Title     Text      `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Subtitle  Text      `gorm:"embedded;embeddedPrefix:subtitle_" json:"subtitle"`
	CtaText   Text      `gorm:"embedded;embeddedPrefix:cta_text_" json:"cta_text"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RobotModel3D struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	GlbFile   string    `gorm:"size:255" json:"glb_file"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RobotModel3D) TableName() string {
	return "robot_models_3d"
}

type SplineModelUrl struct {
	ID        uint   `gorm:"primaryKey" json:"pk"`
	SplineURL string `gorm:"column:spline_url;size:500" json:"spline_url"`
}

type PhoneNumber struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PhoneNumber string `gorm:"size:30" json:"phone_number"`
}

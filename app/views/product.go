package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/utils/format"
	"github.com/shopspring/decimal"
)

// EmptyValue fills a blank leaf inside a specification group that is kept.
const EmptyValue = "—"

type SpecItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SpecGroup struct {
	Category string     `json:"category"`
	Items    []SpecItem `json:"items"`
}

type TechBlock struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type TechSpecs struct {
	Blocks []TechBlock `json:"blocks"`
}

type Slide struct {
	ID            uint    `json:"id"`
	Type          string  `json:"type"`
	Image         *string `json:"image"`
	ImageDuration int     `json:"imageDuration"`
}

type HighlightView struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

type Paragraph struct {
	Before    string `json:"before"`
	Highlight string `json:"highlight"`
	After     string `json:"after"`
}

type FeatureView struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	Img1       *string     `json:"img1"`
	Img2       *string     `json:"img2"`
	Img3       *string     `json:"img3"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// ProductFields are the plain spec columns shared by list and detail.
type ProductFields struct {
	Speed             int    `json:"product_speed"`
	WeightLifting     string `json:"product_weight_lifting"`
	WeightKg          string `json:"weight_kg"`
	DimensionsCm      string `json:"dimensions_cm"`
	ProtectionLevel   string `json:"protection_level"`
	VoiceRecognition  bool   `json:"voice_recognition"`
	FrontLight        bool   `json:"front_light"`
	CarryingStrap     bool   `json:"carrying_strap"`
	Processor         string `json:"processor"`
	CamerasSensors    string `json:"cameras_sensors"`
	CameraSpecs       string `json:"camera_specs"`
	Wifi              bool   `json:"wifi"`
	BluetoothVersion  string `json:"bluetooth_version"`
	BatteryLifeHours  string `json:"battery_life_hours"`
	BatteryModel      string `json:"battery_model"`
	BatteryCapacity   string `json:"battery_capacity"`
	BatteryProtection bool   `json:"battery_protection"`
}

type ProductListItem struct {
	ID                  uint           `json:"id"`
	Highlights          *HighlightView `json:"highlights"`
	ProductName         string         `json:"product_name"`
	ProductDescription  string         `json:"product_description"`
	ProductImage        *string        `json:"product_image"`
	ProductCategoryName string         `json:"product_category_name"`
	ProductCategorySlug string         `json:"product_category_slug"`
	Specs               []SpecItem     `json:"specs"`
	ProductFields
	IsAvailableForRent bool         `json:"is_available_for_rent"`
	IsAvailableForSale bool         `json:"is_available_for_sale"`
	CreatedAt          time.Time    `json:"created_at"`
	Features           *FeatureView `json:"features"`
	Slug               string       `json:"slug"`
}

type Hero struct {
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	PriceText     string  `json:"priceText"`
	CtaText       string  `json:"ctaText"`
	ImageSrc      *string `json:"imageSrc"`
	ImageAlt      string  `json:"imageAlt"`
	ShowParticles bool    `json:"showParticles"`
}

type InfoModel struct {
	Chip     string `json:"chip"`
	Display  string `json:"display"`
	Battery  string `json:"battery"`
	Material string `json:"material"`
	Price    string `json:"price"`
}

type TitledItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type FeatureCard struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type FeatureCards struct {
	Title    string        `json:"title"`
	Features []FeatureCard `json:"features"`
}

type Accordion struct {
	Title string       `json:"title"`
	Items []TitledItem `json:"items"`
}

type ImageView struct {
	ID      uint   `json:"id"`
	Image   string `json:"image"`
	AltText string `json:"alt_text"`
}

type ProductDetail struct {
	UnitreeHero         Hero           `json:"unitreeHero"`
	InfoModel           InfoModel      `json:"infoModel"`
	Specs               []SpecItem     `json:"specs"`
	NavigationShowcase  []TitledItem   `json:"navigationShowcase"`
	ProductName         string         `json:"product_name"`
	ProductDescription  string         `json:"product_description"`
	DeliveryContents    string         `json:"delivery_contents"`
	Slug                string         `json:"slug"`
	ID                  uint           `json:"id"`
	ProductImage        *string        `json:"product_image"`
	Images              []ImageView    `json:"images"`
	ProductCategoryName string         `json:"product_category_name"`
	TechSpecs           TechSpecs      `json:"techSpecs"`
	ProductFields
	IsAvailableForRent   bool           `json:"is_available_for_rent"`
	IsAvailableForSale   bool           `json:"is_available_for_sale"`
	CreatedAt            time.Time      `json:"created_at"`
	FeatureCards         FeatureCards   `json:"featureCards"`
	IntegrationAccordion Accordion      `json:"integrationAccordion"`
	Features             *FeatureView   `json:"features"`
	Highlights           *HighlightView `json:"highlights"`
	Specifications       []SpecGroup    `json:"specifications"`
}

func decimalField(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func fields(p *models.Product) ProductFields {
	return ProductFields{
		Speed:             p.Speed,
		WeightLifting:     p.WeightLifting,
		WeightKg:          decimalField(p.WeightKg),
		DimensionsCm:      p.DimensionsCm,
		ProtectionLevel:   p.ProtectionLevel,
		VoiceRecognition:  p.VoiceRecognition,
		FrontLight:        p.FrontLight,
		CarryingStrap:     p.CarryingStrap,
		Processor:         p.Processor,
		CamerasSensors:    p.CamerasSensors,
		CameraSpecs:       p.CameraSpecs,
		Wifi:              p.Wifi,
		BluetoothVersion:  p.BluetoothVersion,
		BatteryLifeHours:  decimalField(p.BatteryLifeHours),
		BatteryModel:      p.BatteryModel,
		BatteryCapacity:   p.BatteryCapacity,
		BatteryProtection: p.BatteryProtection,
	}
}

func categoryName(c Context, p *models.Product) string {
	if p.Category == nil {
		return ""
	}
	return c.T(p.Category.Name)
}

func categorySlug(p *models.Product) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Slug
}

// wireless lists the radio modules a product carries.
func wireless(p *models.Product) []string {
	var out []string
	if p.Wifi {
		out = append(out, "WiFi 6")
	}
	if v := strings.TrimSpace(p.BluetoothVersion); v != "" {
		out = append(out, "Bluetooth "+v)
	}
	return out
}

func hours(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}
	return format.Decimal(d, 1) + " hours"
}

// ShortSpecs is the four-line summary shown on product cards.
func ShortSpecs(c Context, p *models.Product) []SpecItem {
	specs := []SpecItem{}
	if p.Speed > 0 {
		specs = append(specs, SpecItem{Label: c.Label("short_speed"), Value: fmt.Sprintf("%d km/h", p.Speed)})
	}
	if v := strings.TrimSpace(p.WeightLifting); v != "" {
		specs = append(specs, SpecItem{Label: c.Label("short_capacity"), Value: v})
	}
	if w := wireless(p); len(w) > 0 {
		specs = append(specs, SpecItem{Label: c.Label("short_wireless"), Value: strings.Join(w, " and ")})
	}
	if h := hours(p.BatteryLifeHours); h != "" {
		specs = append(specs, SpecItem{Label: c.Label("short_autonomy"), Value: h})
	}
	return specs
}

type leaf struct {
	key   string
	value string
	flag  bool
}

func (c Context) yesNo(b bool) string {
	if b {
		return c.Label("yes")
	}
	return c.Label("no")
}

// flag leaves render as Yes/No but count as empty when false.
func (c Context) flag(key string, b bool) leaf {
	if !b {
		return leaf{key: key, flag: true}
	}
	return leaf{key: key, value: c.yesNo(true), flag: true}
}

func (c Context) group(title string, leaves ...leaf) (SpecGroup, bool) {
	kept := false
	for _, l := range leaves {
		if strings.TrimSpace(l.value) != "" {
			kept = true
			break
		}
	}
	if !kept {
		return SpecGroup{}, false
	}
	g := SpecGroup{Category: c.Label(title), Items: make([]SpecItem, 0, len(leaves))}
	for _, l := range leaves {
		v := strings.TrimSpace(l.value)
		if v == "" {
			v = EmptyValue
			if l.flag {
				v = c.yesNo(false)
			}
		}
		g.Items = append(g.Items, SpecItem{Label: c.Label(l.key), Value: v})
	}
	return g, true
}

func positive(d decimal.Decimal, precision int) string {
	if !d.IsPositive() {
		return ""
	}
	return format.Decimal(d, precision)
}

// Specifications groups every spec column under a localized heading. A group
// with nothing filled in is left out entirely.
func Specifications(c Context, p *models.Product) []SpecGroup {
	speed := ""
	if p.Speed > 0 {
		speed = format.Int(p.Speed)
	}

	candidates := []struct {
		title  string
		leaves []leaf
	}{
		{"physical", []leaf{
			{key: "dimensions", value: p.DimensionsCm},
			{key: "protection", value: p.ProtectionLevel},
			{key: "weight", value: format.WithUnit(positive(p.WeightKg, 1), c.Label("unit_mass"))},
		}},
		{"mobility", []leaf{
			{key: "speed", value: format.WithUnit(speed, c.Label("unit_speed"))},
			{key: "lifting", value: p.WeightLifting},
		}},
		{"electric", []leaf{
			{key: "battery_capacity", value: p.BatteryCapacity},
			{key: "battery_life", value: format.WithUnit(positive(p.BatteryLifeHours, 1), c.Label("unit_hours"))},
		}},
		{"connectivity", []leaf{
			c.flag("wifi", p.Wifi),
			{key: "bluetooth", value: p.BluetoothVersion},
		}},
		{"hardware", []leaf{
			{key: "processor", value: p.Processor},
			{key: "sensors", value: p.CamerasSensors},
			{key: "camera_specs", value: p.CameraSpecs},
		}},
		{"functions", []leaf{
			c.flag("voice", p.VoiceRecognition),
			c.flag("light", p.FrontLight),
			c.flag("strap", p.CarryingStrap),
		}},
	}

	groups := []SpecGroup{}
	for _, cand := range candidates {
		if g, ok := c.group(cand.title, cand.leaves...); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

func nonEmpty(values ...string) []string {
	out := []string{}
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func BuildTechSpecs(p *models.Product) TechSpecs {
	blocks := []TechBlock{}
	if tags := nonEmpty(p.Processor); len(tags) > 0 {
		blocks = append(blocks, TechBlock{Title: "Processors", Tags: tags})
	}
	if tags := nonEmpty(p.CamerasSensors, p.CameraSpecs); len(tags) > 0 {
		blocks = append(blocks, TechBlock{Title: "Cameras and sensors", Tags: tags})
	}
	if tags := wireless(p); len(tags) > 0 {
		blocks = append(blocks, TechBlock{Title: "Additional devices", Tags: tags})
	}
	if tags := nonEmpty(hours(p.BatteryLifeHours), p.BatteryCapacity, p.BatteryModel); len(tags) > 0 {
		blocks = append(blocks, TechBlock{Title: "Battery", Tags: tags})
	}
	return TechSpecs{Blocks: blocks}
}

func highlight(c Context, h *models.Highlight) *HighlightView {
	if h == nil {
		return nil
	}
	v := &HighlightView{Title: c.T(h.Title), Slides: make([]Slide, 0, len(h.Slides))}
	for _, s := range h.Slides {
		v.Slides = append(v.Slides, Slide{
			ID:            s.ID,
			Type:          "image",
			Image:         c.MediaPtr(s.Image),
			ImageDuration: s.ImageDuration,
		})
	}
	return v
}

func feature(c Context, f *models.ProductFeature) *FeatureView {
	if f == nil {
		return nil
	}
	v := &FeatureView{
		Title:      c.T(f.Title),
		Subtitle:   c.T(f.Subtitle),
		Img1:       c.MediaPtr(f.Img1),
		Img2:       c.MediaPtr(f.Img2),
		Img3:       c.MediaPtr(f.Img3),
		Paragraphs: make([]Paragraph, 0, len(f.Paragraphs)),
	}
	for _, p := range f.Paragraphs {
		v.Paragraphs = append(v.Paragraphs, Paragraph{
			Before:    c.T(p.Before),
			Highlight: c.T(p.Highlight),
			After:     c.T(p.After),
		})
	}
	return v
}

func ProductItem(c Context, p *models.Product) ProductListItem {
	return ProductListItem{
		ID:                  p.ID,
		Highlights:          highlight(c, p.Highlight),
		ProductName:         c.T(p.Name),
		ProductDescription:  c.T(p.Description),
		ProductImage:        c.MediaPtr(p.ProductImage),
		ProductCategoryName: categoryName(c, p),
		ProductCategorySlug: categorySlug(p),
		Specs:               ShortSpecs(c, p),
		ProductFields:       fields(p),
		IsAvailableForRent:  p.IsAvailableForRent,
		IsAvailableForSale:  p.IsAvailableForSale,
		CreatedAt:           p.CreatedAt,
		Features:            feature(c, p.Feature),
		Slug:                p.Slug,
	}
}

func ProductItems(c Context, products []models.Product) []ProductListItem {
	items := make([]ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, ProductItem(c, &products[i]))
	}
	return items
}

// priceText advertises rent when the product can be rented, sale otherwise.
func priceText(c Context, p *models.Product) string {
	if p.IsAvailableForRent || !p.IsAvailableForSale {
		return c.Label("hero_price_rent")
	}
	return c.Label("available_for_sale")
}

func Detail(c Context, p *models.Product) ProductDetail {
	name := c.T(p.Name)
	heroImage := c.MediaOr(p.ProductImage, DefaultCardImage)

	d := ProductDetail{
		UnitreeHero: Hero{
			Title:         name,
			Subtitle:      c.Label("hero_subtitle"),
			PriceText:     priceText(c, p),
			CtaText:       c.Label("hero_cta"),
			ImageSrc:      &heroImage,
			ImageAlt:      name,
			ShowParticles: true,
		},
		InfoModel: InfoModel{
			Chip:     p.BatteryModel,
			Display:  p.Processor,
			Battery:  p.BatteryCapacity,
			Material: p.BluetoothVersion,
			Price:    c.Label("available_for_sale"),
		},
		Specs:               ShortSpecs(c, p),
		NavigationShowcase:  make([]TitledItem, 0, len(p.NavigationShowcases)),
		ProductName:         name,
		ProductDescription:  c.T(p.Description),
		DeliveryContents:    c.T(p.DeliveryContents),
		Slug:                p.Slug,
		ID:                  p.ID,
		ProductImage:        c.MediaPtr(p.ProductImage),
		Images:              make([]ImageView, 0, len(p.Images)),
		ProductCategoryName: categoryName(c, p),
		TechSpecs:           BuildTechSpecs(p),
		ProductFields:       fields(p),
		IsAvailableForRent:  p.IsAvailableForRent,
		IsAvailableForSale:  p.IsAvailableForSale,
		CreatedAt:           p.CreatedAt,
		FeatureCards: FeatureCards{
			Title:    fmt.Sprintf(c.Label("advantages_of"), name),
			Features: make([]FeatureCard, 0, len(p.FeatureCards)),
		},
		IntegrationAccordion: Accordion{
			Title: c.Label("purchase_additionally"),
			Items: make([]TitledItem, 0, len(p.AdditionalDevices)),
		},
		Features:       feature(c, p.Feature),
		Highlights:     highlight(c, p.Highlight),
		Specifications: Specifications(c, p),
	}

	for _, n := range p.NavigationShowcases {
		d.NavigationShowcase = append(d.NavigationShowcase, TitledItem{
			Title:       c.T(n.Title),
			Description: c.T(n.Description),
			Image:       c.Media(n.Image),
		})
	}
	for _, img := range p.Images {
		d.Images = append(d.Images, ImageView{ID: img.ID, Image: c.Media(img.Image), AltText: img.AltText})
	}
	for _, fc := range p.FeatureCards {
		d.FeatureCards.Features = append(d.FeatureCards.Features, FeatureCard{Title: c.T(fc.Title), Desc: c.T(fc.Desc)})
	}
	for _, a := range p.AdditionalDevices {
		d.IntegrationAccordion.Items = append(d.IntegrationAccordion.Items, TitledItem{
			Title:       c.T(a.Title),
			Description: c.T(a.Description),
			Image:       c.MediaOr(a.Image, DefaultAdditionalImage),
		})
	}
	return d
}

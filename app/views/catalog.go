package views

import (
	"unicode/utf8"

	"github.com/hitechrobotics/catalog-api/app/models"
)

const cardDescriptionLimit = 50

type ProductPreview struct {
	ID          uint   `json:"id"`
	ProductName string `json:"product_name"`
}

type CategoryItem struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Products    []ProductPreview `json:"products"`
	Slug        string           `json:"slug"`
	NameEn      string           `json:"name_en"`
	NameRu      string           `json:"name_ru"`
	NameUz      string           `json:"name_uz"`
}

func CategoryItems(c Context, categories []models.Category) []CategoryItem {
	items := make([]CategoryItem, 0, len(categories))
	for _, cat := range categories {
		item := CategoryItem{
			ID:          cat.ID,
			Name:        c.T(cat.Name),
			Description: c.T(cat.Description),
			Products:    make([]ProductPreview, 0, len(cat.Products)),
			Slug:        cat.Slug,
			NameEn:      cat.Name.En,
			NameRu:      cat.Name.Ru,
			NameUz:      cat.Name.Uz,
		}
		for _, p := range cat.Products {
			item.Products = append(item.Products, ProductPreview{ID: p.ID, ProductName: c.T(p.Name)})
		}
		items = append(items, item)
	}
	return items
}

type Card struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Landing struct {
	Label string `json:"label"`
	Cards []Card `json:"cards"`
}

type DeviceLanding struct {
	DeviceLandingData map[string]Landing `json:"deviceLandingData"`
}

// truncate keeps the first n runes and marks the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func cardImage(c Context, p *models.Product) string {
	switch {
	case p.LandingImage != "":
		return c.Media(p.LandingImage)
	case p.ProductImage != "":
		return c.Media(p.ProductImage)
	default:
		return c.Media(DefaultCardImage)
	}
}

// CategoryLanding is the card grid of one category, keyed by its slug.
func CategoryLanding(c Context, category *models.Category, products []models.Product) DeviceLanding {
	cards := make([]Card, 0, len(products))
	for i := range products {
		p := &products[i]
		cards = append(cards, Card{
			Title:       c.T(p.Name),
			Slug:        p.Slug,
			Description: truncate(c.T(p.Description), cardDescriptionLimit),
			Image:       cardImage(c, p),
		})
	}
	return DeviceLanding{DeviceLandingData: map[string]Landing{
		category.Slug: {Label: c.T(category.Name), Cards: cards},
	}}
}

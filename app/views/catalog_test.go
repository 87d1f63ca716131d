package views

import (
	"strings"
	"testing"

	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/utils/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))

	long := strings.Repeat("я", 60)
	got := truncate(long, 50)
	assert.Equal(t, strings.Repeat("я", 50)+"...", got)
}

func TestCategoryLanding(t *testing.T) {
	c := testContext(locale.EN)
	category := &models.Category{Slug: "quadrupeds", Name: models.NewText("Quadrupeds", "", "")}
	products := []models.Product{
		{Name: models.NewText("A", "", ""), Slug: "a", LandingImage: "landing/a.jpg", ProductImage: "products/a.png"},
		{Name: models.NewText("B", "", ""), Slug: "b", ProductImage: "products/b.png"},
		{Name: models.NewText("C", "", ""), Slug: "c"},
	}

	landing := CategoryLanding(c, category, products)
	got, ok := landing.DeviceLandingData["quadrupeds"]
	require.True(t, ok)
	assert.Equal(t, "Quadrupeds", got.Label)
	require.Len(t, got.Cards, 3)
	assert.Equal(t, "http://api.test/media/landing/a.jpg", got.Cards[0].Image)
	assert.Equal(t, "http://api.test/media/products/b.png", got.Cards[1].Image)
	assert.Equal(t, "http://api.test/media/"+DefaultCardImage, got.Cards[2].Image)
}

func TestCategoryItems(t *testing.T) {
	categories := []models.Category{{
		ID:       1,
		Slug:     "humanoids",
		Name:     models.NewText("Humanoids", "Гуманоиды", ""),
		Products: []models.Product{{ID: 4, Name: models.NewText("H1", "", "")}},
	}}

	items := CategoryItems(testContext(locale.RU), categories)
	require.Len(t, items, 1)
	assert.Equal(t, "Гуманоиды", items[0].Name)
	assert.Equal(t, "Humanoids", items[0].NameEn)
	assert.Equal(t, "", items[0].NameUz)
	assert.Equal(t, []ProductPreview{{ID: 4, ProductName: "H1"}}, items[0].Products)
}

func TestMedia(t *testing.T) {
	c := testContext(locale.EN)
	assert.Equal(t, "", c.Media(""))
	assert.Equal(t, "https://cdn.test/x.png", c.Media("https://cdn.test/x.png"))
	assert.Equal(t, "http://api.test/media/x.png", c.Media("x.png"))
	assert.Equal(t, "http://api.test/media/x.png", c.Media("/media/x.png"))
	assert.Nil(t, c.MediaPtr(" "))

	cdn := Context{MediaURL: "https://cdn.test/media/"}
	assert.Equal(t, "https://cdn.test/media/x.png", cdn.Media("/x.png"))
}

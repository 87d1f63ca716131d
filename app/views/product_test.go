package views

import (
	"testing"

	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/utils/locale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(l locale.Locale) Context {
	return Context{Locale: l, BaseURL: "http://api.test", MediaURL: "/media/"}
}

func fullProduct() *models.Product {
	return &models.Product{
		ID:               7,
		Name:             models.NewText("Go2", "Го2", ""),
		Description:      models.NewText("Robot dog", "Робот-собака", ""),
		Slug:             "go2",
		Category:         &models.Category{Name: models.NewText("Quadrupeds", "Четвероногие", ""), Slug: "quadrupeds"},
		Speed:            12,
		WeightLifting:    "8 kg",
		WeightKg:         decimal.RequireFromString("15.00"),
		DimensionsCm:     "70x31x40",
		ProtectionLevel:  "IP54",
		Processor:        "Jetson Orin",
		CamerasSensors:   "LiDAR",
		CameraSpecs:      "120° FOV",
		Wifi:             true,
		BluetoothVersion: "5.2",
		BatteryLifeHours: decimal.RequireFromString("2.5"),
		BatteryCapacity:  "8000 mAh",
		BatteryModel:     "BT-1",
		FrontLight:       true,

		IsAvailableForSale: true,
		IsAvailableForRent: true,
		ProductImage:       "products/go2.png",
	}
}

func TestShortSpecs(t *testing.T) {
	specs := ShortSpecs(testContext(locale.EN), fullProduct())
	assert.Equal(t, []SpecItem{
		{Label: "Maximum speed", Value: "12 km/h"},
		{Label: "Carrying capacity", Value: "8 kg"},
		{Label: "Wireless module", Value: "WiFi 6 and Bluetooth 5.2"},
		{Label: "Autonomous work", Value: "2.5 hours"},
	}, specs)

	bare := &models.Product{BluetoothVersion: "5.0"}
	specs = ShortSpecs(testContext(locale.RU), bare)
	require.Len(t, specs, 1)
	assert.Equal(t, "Беспроводной модуль", specs[0].Label)
	assert.Equal(t, "Bluetooth 5.0", specs[0].Value)

	assert.Empty(t, ShortSpecs(testContext(locale.EN), &models.Product{}))
}

func TestSpecificationsOmitsEmptyGroups(t *testing.T) {
	p := &models.Product{DimensionsCm: "70x31x40"}
	groups := Specifications(testContext(locale.EN), p)

	require.Len(t, groups, 1)
	assert.Equal(t, "Physical Characteristics", groups[0].Category)
	assert.Equal(t, []SpecItem{
		{Label: "Dimensions (standing)", Value: "70x31x40"},
		{Label: "Protection class", Value: EmptyValue},
		{Label: "Weight (with battery)", Value: EmptyValue},
	}, groups[0].Items)
}

func TestSpecificationsFlags(t *testing.T) {
	p := &models.Product{FrontLight: true}
	groups := Specifications(testContext(locale.RU), p)

	require.Len(t, groups, 1, "false flags alone do not keep a group")
	assert.Equal(t, "Функции", groups[0].Category)
	assert.Equal(t, []SpecItem{
		{Label: "Распознавание голоса", Value: "Нет"},
		{Label: "Передний фонарь", Value: "Да"},
		{Label: "Ремень для переноски", Value: "Нет"},
	}, groups[0].Items)

	assert.Empty(t, Specifications(testContext(locale.EN), &models.Product{}))
}

func TestSpecificationsUnits(t *testing.T) {
	groups := Specifications(testContext(locale.RU), fullProduct())
	require.Len(t, groups, 6)

	assert.Equal(t, "15.0 кг", groups[0].Items[2].Value)
	assert.Equal(t, "12 км/ч", groups[1].Items[0].Value)
	assert.Equal(t, "2.5 ч", groups[2].Items[1].Value)
	assert.Equal(t, "Да", groups[3].Items[0].Value)
}

func TestBuildTechSpecs(t *testing.T) {
	specs := BuildTechSpecs(fullProduct())
	assert.Equal(t, []TechBlock{
		{Title: "Processors", Tags: []string{"Jetson Orin"}},
		{Title: "Cameras and sensors", Tags: []string{"LiDAR", "120° FOV"}},
		{Title: "Additional devices", Tags: []string{"WiFi 6", "Bluetooth 5.2"}},
		{Title: "Battery", Tags: []string{"2.5 hours", "8000 mAh", "BT-1"}},
	}, specs.Blocks)

	assert.Empty(t, BuildTechSpecs(&models.Product{}).Blocks)
}

func TestProductItem(t *testing.T) {
	item := ProductItem(testContext(locale.RU), fullProduct())

	assert.Equal(t, "Го2", item.ProductName)
	assert.Equal(t, "Четвероногие", item.ProductCategoryName)
	assert.Equal(t, "quadrupeds", item.ProductCategorySlug)
	require.NotNil(t, item.ProductImage)
	assert.Equal(t, "http://api.test/media/products/go2.png", *item.ProductImage)
	assert.Equal(t, "15.00", item.WeightKg)
	assert.Equal(t, "2.50", item.BatteryLifeHours)
	assert.Nil(t, item.Highlights)
}

func TestDetail(t *testing.T) {
	p := fullProduct()
	p.ProductImage = ""
	p.AdditionalDevices = []models.AdditionalDevice{{Title: models.NewText("Dock", "Док", "")}}
	p.Highlight = &models.Highlight{
		Title:  models.NewText("Highlights", "", ""),
		Slides: []models.HighlightItem{{ID: 3, Image: "h/1.jpg", ImageDuration: 5}},
	}

	d := Detail(testContext(locale.UZ), p)

	assert.Equal(t, "Go2", d.ProductName, "blank uz falls back to en")
	assert.Equal(t, "Go2 afzalliklari", d.FeatureCards.Title)
	assert.Equal(t, "Ijaraga olish mumkin", d.UnitreeHero.PriceText)
	require.NotNil(t, d.UnitreeHero.ImageSrc)
	assert.Equal(t, "http://api.test/media/"+DefaultCardImage, *d.UnitreeHero.ImageSrc)
	assert.Nil(t, d.ProductImage)

	require.Len(t, d.IntegrationAccordion.Items, 1)
	assert.Equal(t, "http://api.test/media/"+DefaultAdditionalImage, d.IntegrationAccordion.Items[0].Image)

	require.NotNil(t, d.Highlights)
	require.Len(t, d.Highlights.Slides, 1)
	assert.Equal(t, "image", d.Highlights.Slides[0].Type)
	assert.Equal(t, "http://api.test/media/h/1.jpg", *d.Highlights.Slides[0].Image)

	assert.NotNil(t, d.Images)
	assert.NotNil(t, d.NavigationShowcase)
}

func TestPriceText(t *testing.T) {
	c := testContext(locale.EN)
	assert.Equal(t, "Available for sale", priceText(c, &models.Product{IsAvailableForSale: true}))
	assert.Equal(t, "Available for rent", priceText(c, &models.Product{IsAvailableForRent: true}))
	assert.Equal(t, "Available for rent", priceText(c, &models.Product{}))
}

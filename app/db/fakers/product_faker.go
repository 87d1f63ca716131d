package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/shopspring/decimal"
)

var robotSeries = []string{"Go2", "B2", "H1", "G1", "Aliengo", "Laikago", "A2"}

var processors = []string{"8-core high-performance CPU", "NVIDIA Jetson Orin NX", "Intel Core i7 + Jetson Orin"}

var protectionLevels = []string{"IP54", "IP56", "IP67"}

// ProductFaker returns a demo robot filed under categorySlug. The seeder
// passes it to the catalog service, which derives the slug.
func ProductFaker(categorySlug string, series string) services.ProductInput {
	in := services.NewProductInput()
	in.CategorySlug = categorySlug

	p := &in.Product
	p.Name = models.NewText(
		fmt.Sprintf("Unitree %s", series),
		fmt.Sprintf("Unitree %s", series),
		fmt.Sprintf("Unitree %s", series),
	)
	p.Description = models.NewText(
		faker.Paragraph(),
		"Интеллектуальный робот нового поколения для исследований и бизнеса.",
		"Tadqiqot va biznes uchun yangi avlod aqlli roboti.",
	)
	p.DeliveryContents = models.NewText("Robot, battery, charger, remote controller", "Робот, аккумулятор, зарядное устройство, пульт", "")
	p.Quantity = rand.Intn(20) + 1

	p.Speed = rand.Intn(15) + 3
	p.WeightLifting = fmt.Sprintf("%d kg", rand.Intn(40)+5)
	p.WeightKg = decimal.NewFromFloat(15 + rand.Float64()*50).Round(2)
	p.DimensionsCm = fmt.Sprintf("%dx%dx%d", 60+rand.Intn(40), 30+rand.Intn(20), 40+rand.Intn(60))
	p.ProtectionLevel = protectionLevels[rand.Intn(len(protectionLevels))]

	p.VoiceRecognition = rand.Intn(2) == 0
	p.FrontLight = true
	p.CarryingStrap = rand.Intn(2) == 0

	p.Processor = processors[rand.Intn(len(processors))]
	p.CamerasSensors = "4D LiDAR L1, HD wide-angle camera"
	p.CameraSpecs = "1280x720, 120° FOV"
	p.Wifi = true
	p.BluetoothVersion = "5.2"

	p.BatteryLifeHours = decimal.NewFromFloat(1 + rand.Float64()*3).Round(1)
	p.BatteryModel = fmt.Sprintf("BT-%s", series)
	p.BatteryCapacity = fmt.Sprintf("%d mAh", 8000+rand.Intn(8000))
	p.BatteryProtection = true

	p.IsAvailableForSale = true
	p.IsAvailableForRent = rand.Intn(3) != 0

	p.ProductImage = fmt.Sprintf("products/%s.png", series)

	p.Feature = &models.ProductFeature{
		Title:    models.NewText("Smart companion", "Умный компаньон", "Aqlli hamroh"),
		Subtitle: models.NewText(faker.Sentence(), "", ""),
		Paragraphs: []models.FeatureParagraph{
			{
				Before:    models.NewText("Moves at up to ", "Двигается со скоростью до ", ""),
				Highlight: models.NewText(fmt.Sprintf("%d km/h", p.Speed), fmt.Sprintf("%d км/ч", p.Speed), ""),
				After:     models.NewText(" on any terrain.", " по любой местности.", ""),
			},
		},
	}
	p.Highlight = &models.Highlight{
		Title: models.NewText("Highlights", "Особенности", "Xususiyatlar"),
		Slides: []models.HighlightItem{
			{Image: fmt.Sprintf("highlights/%s-1.jpg", series), ImageDuration: 5},
			{Image: fmt.Sprintf("highlights/%s-2.jpg", series), ImageDuration: 5},
		},
	}
	p.AdditionalDevices = []models.AdditionalDevice{
		{Title: models.NewText("Extra battery", "Дополнительный аккумулятор", "Qo'shimcha batareya"), Description: models.NewText(faker.Sentence(), "", "")},
		{Title: models.NewText("Docking station", "Док-станция", ""), Description: models.NewText(faker.Sentence(), "", "")},
	}
	p.NavigationShowcases = []models.NavigationShowcase{
		{Title: models.NewText("Autonomous navigation", "Автономная навигация", ""), Description: models.NewText(faker.Sentence(), "", ""), Image: fmt.Sprintf("showcase/%s.jpg", series)},
	}
	p.FeatureCards = []models.ProductFeatureCard{
		{Title: models.NewText("Agile", "Ловкий", "Chaqqon"), Desc: models.NewText(faker.Sentence(), "", "")},
		{Title: models.NewText("Durable", "Прочный", "Mustahkam"), Desc: models.NewText(faker.Sentence(), "", "")},
	}
	return in
}

// Series returns n robot series names for demo products.
func Series(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, robotSeries[i%len(robotSeries)])
	}
	return out
}

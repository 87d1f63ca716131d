package seeders

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/hitechrobotics/catalog-api/app/configs"
	"github.com/hitechrobotics/catalog-api/app/db/fakers"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/hitechrobotics/catalog-api/app/services"
	"gorm.io/gorm"
)

type Seeder struct {
	Name string
	Run  func(ctx context.Context) error
}

type Options struct {
	Orders   int
	Contacts int
}

type deps struct {
	catalog     *services.CatalogService
	site        *services.SiteService
	submissions *services.SubmissionService
	products    repositories.ProductRepositoryImpl
	categories  repositories.CategoryRepositoryImpl
	siteRepo    repositories.SiteRepositoryImpl
	logger      *slog.Logger
}

// SeedersRegister lists the seeders in the order they run. Demo content goes
// through the services, so seeded rows obey the same rules as real ones.
func SeedersRegister(db *gorm.DB, env configs.ENV, opts Options, logger *slog.Logger) []Seeder {
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	siteRepo := repositories.NewSiteRepository(db)

	d := deps{
		catalog: services.NewCatalogService(categoryRepo, productRepo, logger),
		site:    services.NewSiteService(siteRepo, logger),
		submissions: services.NewSubmissionService(
			productRepo,
			repositories.NewOrderRepository(db),
			repositories.NewContactRepository(db),
			env.PhoneMinDigits, env.PhoneMaxDigits,
			logger,
		),
		products:   productRepo,
		categories: categoryRepo,
		siteRepo:   siteRepo,
		logger:     logger.With(slog.String("component", "seeder")),
	}

	return []Seeder{
		{Name: "catalog", Run: d.seedCatalog},
		{Name: "site content", Run: d.seedSite},
		{Name: "orders", Run: func(ctx context.Context) error { return d.seedOrders(ctx, opts.Orders) }},
		{Name: "contact messages", Run: func(ctx context.Context) error { return d.seedContacts(ctx, opts.Contacts) }},
	}
}

func DBSeed(ctx context.Context, db *gorm.DB, env configs.ENV, opts Options, logger *slog.Logger) error {
	for _, seeder := range SeedersRegister(db, env, opts, logger) {
		if err := seeder.Run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", seeder.Name, err)
		}
		logger.Info("seeded", slog.String("seeder", seeder.Name))
	}
	return nil
}

var demoCategories = []services.CategoryInput{
	{
		Name:        models.NewText("Quadruped robots", "Четвероногие роботы", "To'rt oyoqli robotlar"),
		Description: models.NewText("Robot dogs for research, inspection and entertainment.", "Роботы-собаки для исследований, инспекции и развлечений.", ""),
	},
	{
		Name:        models.NewText("Humanoid robots", "Человекоподобные роботы", "Gumanoid robotlar"),
		Description: models.NewText("General purpose humanoids.", "Универсальные гуманоиды.", ""),
	},
}

// seedCatalog is skipped once any category exists.
func (d deps) seedCatalog(ctx context.Context) error {
	existing, err := d.categories.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		d.logger.Info("catalog already present, skipping", slog.Int("categories", len(existing)))
		return nil
	}

	for i, in := range demoCategories {
		category, err := d.catalog.CreateCategory(ctx, in)
		if err != nil {
			return err
		}
		for _, series := range fakers.Series(3 + i) {
			if _, err := d.catalog.CreateProduct(ctx, fakers.ProductFaker(category.Slug, series)); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedSite is skipped once the about block exists.
func (d deps) seedSite(ctx context.Context) error {
	if existing, err := d.siteRepo.GetAbout(ctx); err != nil {
		return err
	} else if existing != nil {
		d.logger.Info("site content already present, skipping")
		return nil
	}

	about := &models.AboutCompany{
		Title:           models.NewText("About us", "О нас", "Biz haqimizda"),
		Subtitle:        models.NewText("Robotics for business", "Робототехника для бизнеса", ""),
		MainParagraph:   models.NewText("We bring modern robots to companies across Central Asia.", "Мы привозим современных роботов компаниям Центральной Азии.", ""),
		SectionTitle:    models.NewText("Why us", "Почему мы", ""),
		SectionSubtitle: models.NewText("Experience, service and support", "Опыт, сервис и поддержка", ""),
		Conclusion:      models.NewText("Let's build the future together.", "Давайте строить будущее вместе.", ""),
		DepthHeroTitle:  models.NewText("Hi-Tech Robotics", "Hi-Tech Robotics", "Hi-Tech Robotics"),
		Image:           "about/main.jpg",
		DepthHeroImage:  "about/hero.jpg",
		Features: []models.AboutFeature{
			{Text: models.NewText("Official distributor", "Официальный дистрибьютор", "Rasmiy distribyutor")},
			{Text: models.NewText("Warranty service", "Гарантийное обслуживание", "")},
		},
		FeaturedServices: []models.FeaturedService{
			{Title: models.NewText("Integration", "Интеграция", ""), Desc: models.NewText("Deployment on your site.", "Внедрение на вашем объекте.", "")},
		},
		CountStats: []models.CountStat{
			{Value: "50+", Title: models.NewText("Robots delivered", "Роботов поставлено", ""), Desc: models.NewText("Across the region", "По всему региону", "")},
		},
		FeatureList: []models.AboutFeatureCard{
			{Title: models.NewText("Training", "Обучение", ""), Desc: models.NewText("Operator courses.", "Курсы для операторов.", "")},
		},
		Services: []models.AboutService{
			{Title: models.NewText("Rental", "Аренда", "Ijara"), Desc: models.NewText("Robots for events.", "Роботы для мероприятий.", "")},
		},
	}
	if err := d.site.SaveAbout(ctx, about); err != nil {
		return err
	}

	info := &models.ContactInfo{
		Title:    models.NewText("Contact us", "Свяжитесь с нами", "Biz bilan bog'laning"),
		Subtitle: models.NewText("Visit our showroom", "Посетите наш шоурум", ""),
		MapSrc:   "https://yandex.uz/map-widget/v1/?ll=69.240562%2C41.311081&z=12",
		Locations: []models.ShowroomLocation{
			{City: "Tashkent", Address: "Amir Temur avenue 1", Lat: 41.311081, Lon: 69.240562},
		},
	}
	if err := d.site.SaveContactInfo(ctx, info); err != nil {
		return err
	}

	hero := &models.RoboticsHero{
		Image:    "hero/mobile.jpg",
		ImageAlt: "Robot dog",
		Title:    models.NewText("Robots of the future", "Роботы будущего", "Kelajak robotlari"),
		Subtitle: models.NewText("Available today", "Доступны уже сегодня", ""),
		CtaText:  models.NewText("Order now", "Заказать", "Buyurtma berish"),
	}
	if err := d.site.SaveHero(ctx, hero); err != nil {
		return err
	}

	if err := d.site.SaveRobotModel(ctx, &models.RobotModel3D{GlbFile: "models/robot.glb"}); err != nil {
		return err
	}
	if err := d.site.AddSplineModel(ctx, &models.SplineModelUrl{SplineURL: configs.DefaultSplineURL}); err != nil {
		return err
	}
	return d.site.AddPhoneNumber(ctx, &models.PhoneNumber{PhoneNumber: "+998 71 200 00 00"})
}

func (d deps) seedOrders(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	products, _, err := d.products.List(ctx, repositories.ProductFilter{}, 100, 0)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no products to order")
	}
	for i := 0; i < n; i++ {
		p := &products[rand.Intn(len(products))]
		if _, err := d.submissions.SubmitOrder(ctx, fakers.OrderFaker(p)); err != nil {
			return err
		}
	}
	return nil
}

func (d deps) seedContacts(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := d.submissions.SubmitContact(ctx, fakers.ContactFaker()); err != nil {
			return err
		}
	}
	return nil
}

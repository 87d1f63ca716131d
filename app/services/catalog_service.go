package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitechrobotics/catalog-api/app/helpers"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/repositories"
)

type CategoryInput struct {
	Name        models.Text `json:"name"`
	Description models.Text `json:"description"`
	Slug        string      `json:"slug"`
}

// ProductInput is the admin write shape of a product: the model's own JSON
// plus an optional category slug in place of product_category.
type ProductInput struct {
	models.Product
	CategorySlug string `json:"category"`
}

// NewProductInput returns an input with the model defaults applied, so a
// body that leaves the availability flags out gets them switched on.
func NewProductInput() ProductInput {
	return ProductInput{Product: models.Product{
		IsAvailableForRent: true,
		IsAvailableForSale: true,
	}}
}

type CatalogService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	logger       *slog.Logger
}

func NewCatalogService(categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger.With(slog.String("component", "catalog_service")),
	}
}

type slugChecker func(ctx context.Context, slug string) (bool, error)

// resolveSlug returns the slug a new row is stored under. A supplied slug is
// used as is and must be free; otherwise one is derived from name, adding
// -2, -3, ... until it is unused.
func resolveSlug(ctx context.Context, supplied, name, fallback, entity string, exists slugChecker, verrs ValidationErrors) (string, error) {
	supplied = strings.TrimSpace(supplied)
	if supplied != "" {
		if !helpers.IsValidSlug(supplied) {
			verrs.Add("slug", "Enter a valid “slug” consisting of letters, numbers, underscores or hyphens.")
			return "", nil
		}
		taken, err := exists(ctx, supplied)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", supplied, err)
		}
		if taken {
			verrs.Add("slug", fmt.Sprintf("%s with this slug already exists.", entity))
			return "", nil
		}
		return supplied, nil
	}

	base := helpers.GenerateSlug(name)
	if base == "" {
		base = fallback
	}
	candidate := base
	for n := 2; ; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// slugAttempts bounds how often a derived slug is resolved again after
// losing an insert race.
const slugAttempts = 5

// createWithSlug resolves a slug and hands it to create. When a concurrent
// writer stores the same derived slug first, the slug is resolved again; a
// supplied slug that turns out to be taken is a validation error.
func createWithSlug(ctx context.Context, supplied, name, fallback, entity string, exists slugChecker, verrs ValidationErrors, create func(slug string) error) error {
	for attempt := 1; ; attempt++ {
		slug, err := resolveSlug(ctx, supplied, name, fallback, entity, exists, verrs)
		if err != nil {
			return err
		}
		if len(verrs) > 0 {
			return verrs
		}

		err = create(slug)
		if !errors.Is(err, repositories.ErrSlugTaken) {
			return err
		}
		if strings.TrimSpace(supplied) != "" {
			verrs.Add("slug", fmt.Sprintf("%s with this slug already exists.", entity))
			return verrs
		}
		if attempt == slugAttempts {
			return fmt.Errorf("slug %q: %w", slug, err)
		}
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	verrs := ValidationErrors{}
	if strings.TrimSpace(in.Name.En) == "" {
		verrs.Add("name", "This field is required.")
	}

	var category *models.Category
	err := createWithSlug(ctx, in.Slug, in.Name.En, "category", "category", s.categoryRepo.SlugExists, verrs, func(slug string) error {
		category = &models.Category{
			Name:        in.Name,
			Description: in.Description,
			Slug:        slug,
		}
		return s.categoryRepo.Create(ctx, category)
	})
	if err != nil {
		if _, ok := AsValidation(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.logger.Info("category created", slog.String("slug", category.Slug))
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("load category %q: %w", slug, err)
	}
	if category == nil {
		return ErrNotFound
	}
	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("delete category %q: %w", slug, err)
	}
	s.logger.Info("category deleted", slog.String("slug", slug))
	return nil
}

func (s *CatalogService) resolveCategory(ctx context.Context, in ProductInput, verrs ValidationErrors) (*models.Category, error) {
	if in.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, in.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("load category %q: %w", in.CategorySlug, err)
		}
		if category == nil {
			verrs.Add("category", fmt.Sprintf("Object with slug=%s does not exist.", in.CategorySlug))
		}
		return category, nil
	}
	if in.CategoryID == 0 {
		verrs.Add("product_category", "This field is required.")
		return nil, nil
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("load category %d: %w", in.CategoryID, err)
	}
	if category == nil {
		verrs.Add("product_category", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", in.CategoryID))
	}
	return category, nil
}

func validateProductFields(p *models.Product, verrs ValidationErrors) {
	if strings.TrimSpace(p.Name.En) == "" {
		verrs.Add("product_name", "This field is required.")
	}
	if p.Quantity < 0 {
		verrs.Add("product_quantity", "Ensure this value is greater than or equal to 0.")
	}
	if p.Speed < 0 {
		verrs.Add("product_speed", "Ensure this value is greater than or equal to 0.")
	}
	if p.WeightKg.IsNegative() {
		verrs.Add("weight_kg", "Ensure this value is greater than or equal to 0.")
	}
	if p.BatteryLifeHours.IsNegative() {
		verrs.Add("battery_life_hours", "Ensure this value is greater than or equal to 0.")
	}
}

// CreateProduct stores a product with every child collection it carries.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	verrs := ValidationErrors{}
	product := in.Product
	validateProductFields(&product, verrs)

	category, err := s.resolveCategory(ctx, in, verrs)
	if err != nil {
		return nil, err
	}

	err = createWithSlug(ctx, in.Slug, in.Name.En, "product", "product", s.productRepo.SlugExists, verrs, func(slug string) error {
		product = in.Product
		product.ID = 0
		product.Slug = slug
		product.CategoryID = category.ID
		product.Category = nil
		orderChildren(&product)
		return s.productRepo.Create(ctx, &product)
	})
	if err != nil {
		if _, ok := AsValidation(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.logger.Info("product created", slog.String("slug", product.Slug), slog.String("category", category.Slug))

	created, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("reload product: %w", err)
	}
	return created, nil
}

// orderChildren numbers the ordered child collections in the order given.
func orderChildren(p *models.Product) {
	for i := range p.Images {
		p.Images[i].ID = 0
	}
	if p.Feature != nil {
		p.Feature.ID = 0
		for i := range p.Feature.Paragraphs {
			p.Feature.Paragraphs[i].ID = 0
			p.Feature.Paragraphs[i].Position = i
		}
	}
	if p.Highlight != nil {
		p.Highlight.ID = 0
		for i := range p.Highlight.Slides {
			p.Highlight.Slides[i].ID = 0
			p.Highlight.Slides[i].Position = i
		}
	}
	for i := range p.AdditionalDevices {
		p.AdditionalDevices[i].ID = 0
		p.AdditionalDevices[i].Position = i
	}
	for i := range p.NavigationShowcases {
		p.NavigationShowcases[i].ID = 0
	}
	for i := range p.FeatureCards {
		p.FeatureCards[i].ID = 0
	}
}

// UpdateProduct overwrites the product's own fields. The slug never changes,
// whatever the input says.
func (s *CatalogService) UpdateProduct(ctx context.Context, slug string, in ProductInput) (*models.Product, error) {
	existing, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load product %q: %w", slug, err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	verrs := ValidationErrors{}
	updated := in.Product
	validateProductFields(&updated, verrs)

	if in.CategorySlug == "" && in.CategoryID == 0 {
		in.CategoryID = existing.CategoryID
	}
	category, err := s.resolveCategory(ctx, in, verrs)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	updated.ID = existing.ID
	updated.Slug = existing.Slug
	updated.CreatedAt = existing.CreatedAt
	updated.CategoryID = category.ID

	if err := s.productRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update product %q: %w", slug, err)
	}
	s.logger.Info("product updated", slog.String("slug", slug))
	return s.productRepo.GetByID(ctx, existing.ID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, slug string) error {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("load product %q: %w", slug, err)
	}
	if product == nil {
		return ErrNotFound
	}
	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("delete product %q: %w", slug, err)
	}
	s.logger.Info("product deleted", slog.String("slug", slug))
	return nil
}

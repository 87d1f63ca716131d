package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hitechrobotics/catalog-api/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows a product listing. Nil flags are not applied.
type ProductFilter struct {
	CategorySlug string
	ForSale      *bool
	ForRent      *bool
	Query        string
}

type ProductRepositoryImpl interface {
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

var searchColumns = []string{
	"products.product_name_en",
	"products.product_name_ru",
	"products.product_name_uz",
	"categories.name_en",
	"categories.name_ru",
	"categories.name_uz",
}

// likeEscaper makes a search keyword match literally inside LIKE. The escape
// character is '!' because MySQL reads a lone backslash in a string literal as
// an escape of its own.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}

func (p *productRepository) filtered(ctx context.Context, f ProductFilter) *gorm.DB {
	q := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id")

	if f.CategorySlug != "" {
		q = q.Where("categories.slug = ?", f.CategorySlug)
	}
	if f.ForSale != nil {
		q = q.Where("products.is_available_for_sale = ?", *f.ForSale)
	}
	if f.ForRent != nil {
		q = q.Where("products.is_available_for_rent = ?", *f.ForRent)
	}
	if keyword := strings.TrimSpace(f.Query); keyword != "" {
		pattern := containsPattern(keyword)
		clauses := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	return q
}

func (p *productRepository) List(ctx context.Context, f ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	if total == 0 || int64(offset) >= total {
		return []models.Product{}, total, nil
	}

	err := p.filtered(ctx, f).
		Select("products.*").
		Preload("Category").
		Preload("Feature.Paragraphs", byPosition).
		Preload("Highlight.Slides", byPosition).
		Order("products.created_at DESC, products.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return p.first(ctx, "products.slug = ?", slug)
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return p.first(ctx, "products.id = ?", id)
}

func (p *productRepository) first(ctx context.Context, query string, arg interface{}) (*models.Product, error) {
	var product models.Product

	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Preload("Images").
		Preload("Feature.Paragraphs", byPosition).
		Preload("Highlight.Slides", byPosition).
		Preload("AdditionalDevices", byPosition).
		Preload("NavigationShowcases", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("FeatureCards", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where(query, arg).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return translateCreateError(p.db.WithContext(ctx).Create(product).Error)
}

// Update writes the product's own columns. The slug column is never touched.
func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).
		Model(product).
		Select("*").
		Omit("id", "slug", "created_at", clause.Associations).
		Updates(product).Error
}

// Delete removes the product together with everything it owns, in one
// transaction.
func (p *productRepository) Delete(ctx context.Context, id uint) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteProducts(tx, []uint{id})
	})
}

func deleteProducts(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	featureIDs := tx.Model(&models.ProductFeature{}).Select("id").Where("product_id IN ?", ids)
	if err := tx.Where("feature_id IN (?)", featureIDs).Delete(&models.FeatureParagraph{}).Error; err != nil {
		return fmt.Errorf("delete feature paragraphs: %w", err)
	}
	highlightIDs := tx.Model(&models.Highlight{}).Select("id").Where("product_id IN ?", ids)
	if err := tx.Where("highlight_id IN (?)", highlightIDs).Delete(&models.HighlightItem{}).Error; err != nil {
		return fmt.Errorf("delete highlight items: %w", err)
	}

	owned := []interface{}{
		&models.ProductFeature{},
		&models.Highlight{},
		&models.ProductImage{},
		&models.AdditionalDevice{},
		&models.NavigationShowcase{},
		&models.ProductFeatureCard{},
		&models.Order{},
	}
	for _, m := range owned {
		if err := tx.Where("product_id IN ?", ids).Delete(m).Error; err != nil {
			return fmt.Errorf("delete %T: %w", m, err)
		}
	}

	if err := tx.Where("id IN ?", ids).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/hitechrobotics/catalog-api/app/db/dbtest"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	db          *gorm.DB
	catalog     *CatalogService
	submissions *SubmissionService
	site        *SiteService
	siteRepo    repositories.SiteRepositoryImpl
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := dbtest.Open(t)
	products := repositories.NewProductRepository(db)
	siteRepo := repositories.NewSiteRepository(db)
	return fixture{
		db:      db,
		catalog: NewCatalogService(repositories.NewCategoryRepository(db), products, quietLogger()),
		submissions: NewSubmissionService(
			products,
			repositories.NewOrderRepository(db),
			repositories.NewContactRepository(db),
			7, 15,
			quietLogger(),
		),
		site:     NewSiteService(siteRepo, quietLogger()),
		siteRepo: siteRepo,
	}
}

func (f fixture) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c, err := f.catalog.CreateCategory(context.Background(), CategoryInput{Name: models.NewText(name, "", "")})
	require.NoError(t, err)
	return c
}

func (f fixture) product(t *testing.T, categorySlug, name string, forSale, forRent bool) *models.Product {
	t.Helper()
	in := NewProductInput()
	in.CategorySlug = categorySlug
	in.Name = models.NewText(name, "", "")
	in.IsAvailableForSale = forSale
	in.IsAvailableForRent = forRent
	p, err := f.catalog.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	return p
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func validOrder(productID uint) OrderInput {
	return OrderInput{
		FullName:  "Aziz Karimov",
		Email:     "aziz@example.uz",
		Phone:     "+998901234567",
		OrderType: models.OrderTypeBuy,
		Product:   strconv.FormatUint(uint64(productID), 10),
		Message:   "Please call me back.",
	}
}

func TestSubmitOrderStoresValidOrder(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	p := f.product(t, cat.Slug, "Go2", true, true)

	order, err := f.submissions.SubmitOrder(context.Background(), validOrder(p.ID))
	require.NoError(t, err)
	require.NotNil(t, order.Product)
	assert.Equal(t, p.ID, order.ProductID)
	assert.Equal(t, "go2", order.Product.Slug)
	assert.EqualValues(t, 1, countRows(t, f.db, &models.Order{}))
}

func TestSubmitOrderRejectsBuyWhenNotForSale(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	p := f.product(t, cat.Slug, "Go2", false, true)

	_, err := f.submissions.SubmitOrder(context.Background(), validOrder(p.ID))
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This product is not available for sale."}, verrs["product"])
	assert.Zero(t, countRows(t, f.db, &models.Order{}))

	in := validOrder(p.ID)
	in.OrderType = models.OrderTypeRent
	_, err = f.submissions.SubmitOrder(context.Background(), in)
	assert.NoError(t, err)
}

func TestSubmitOrderReportsAllErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.submissions.SubmitOrder(context.Background(), OrderInput{
		FullName:  "Al",
		Email:     "not-an-email",
		Phone:     "12",
		OrderType: "lease",
		Product:   "999",
	})
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	for _, field := range []string{"full_name", "email", "phone", "order_type", "product"} {
		assert.True(t, verrs.Has(field), field)
	}
	assert.Equal(t, []string{`Invalid pk "999" - object does not exist.`}, verrs["product"])
	assert.Zero(t, countRows(t, f.db, &models.Order{}))
}

func TestSubmitOrderPhoneBounds(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	p := f.product(t, cat.Slug, "Go2", true, true)

	for phone, valid := range map[string]bool{
		"1234567":          true,
		"+123456789012345": true,
		"123456":           false,
		"1234567890123456": false,
		"+99890 123 45 67": false,
	} {
		in := validOrder(p.ID)
		in.Phone = phone
		_, err := f.submissions.SubmitOrder(context.Background(), in)
		if valid {
			assert.NoError(t, err, phone)
		} else {
			verrs, ok := AsValidation(err)
			require.True(t, ok, phone)
			assert.True(t, verrs.Has("phone"), phone)
		}
	}
}

func TestSubmitContactMessageLength(t *testing.T) {
	f := newFixture(t)
	in := ContactInput{
		FullName:    "Dilnoza",
		Email:       "dilnoza@example.uz",
		PhoneNumber: "+998901234567",
		Message:     "abcd",
	}

	_, err := f.submissions.SubmitContact(context.Background(), in)
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Message must be at least 5 characters long."}, verrs["message"])

	in.Message = "abcde"
	msg, err := f.submissions.SubmitContact(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	in.Message = strings.Repeat("x", 5001)
	_, err = f.submissions.SubmitContact(context.Background(), in)
	verrs, ok = AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("message"))

	assert.EqualValues(t, 1, countRows(t, f.db, &models.ContactMessage{}))
}

func TestCreateProductDerivesUniqueSlugs(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	assert.Equal(t, "robot-dogs", cat.Slug)

	first := f.product(t, cat.Slug, "Unitree Go2", true, true)
	second := f.product(t, cat.Slug, "Unitree Go2", true, true)
	third := f.product(t, cat.Slug, "Unitree Go2", true, true)

	assert.Equal(t, "unitree-go2", first.Slug)
	assert.Equal(t, "unitree-go2-2", second.Slug)
	assert.Equal(t, "unitree-go2-3", third.Slug)
}

func TestCreateProductRejectsTakenSlug(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	f.product(t, cat.Slug, "Go2", true, true)

	in := NewProductInput()
	in.CategorySlug = cat.Slug
	in.Name = models.NewText("Another", "", "")
	in.Slug = "go2"
	_, err := f.catalog.CreateProduct(context.Background(), in)
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"product with this slug already exists."}, verrs["slug"])
}

// staleProducts answers the first stale slug lookups as free, the way a
// check reads when a concurrent create has not committed yet.
type staleProducts struct {
	repositories.ProductRepositoryImpl
	stale int
}

func (r *staleProducts) SlugExists(ctx context.Context, slug string) (bool, error) {
	if r.stale > 0 {
		r.stale--
		return false, nil
	}
	return r.ProductRepositoryImpl.SlugExists(ctx, slug)
}

type staleCategories struct {
	repositories.CategoryRepositoryImpl
	stale int
}

func (r *staleCategories) SlugExists(ctx context.Context, slug string) (bool, error) {
	if r.stale > 0 {
		r.stale--
		return false, nil
	}
	return r.CategoryRepositoryImpl.SlugExists(ctx, slug)
}

func TestCreateProductRetriesSlugAfterInsertRace(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	f.product(t, cat.Slug, "Unitree Go2", true, true)

	racing := NewCatalogService(
		repositories.NewCategoryRepository(f.db),
		&staleProducts{ProductRepositoryImpl: repositories.NewProductRepository(f.db), stale: 1},
		quietLogger(),
	)
	in := NewProductInput()
	in.CategorySlug = cat.Slug
	in.Name = models.NewText("Unitree Go2", "", "")
	in.Images = []models.ProductImage{{Image: "products/go2.png"}}

	p, err := racing.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "unitree-go2-2", p.Slug)
	assert.Len(t, p.Images, 1)
	assert.EqualValues(t, 2, countRows(t, f.db, &models.Product{}))
}

func TestCreateWithSuppliedSlugLosingRace(t *testing.T) {
	f := newFixture(t)
	f.category(t, "Robot dogs")

	racing := NewCatalogService(
		&staleCategories{CategoryRepositoryImpl: repositories.NewCategoryRepository(f.db), stale: 1},
		repositories.NewProductRepository(f.db),
		quietLogger(),
	)
	_, err := racing.CreateCategory(context.Background(), CategoryInput{
		Name: models.NewText("Dogs", "", ""),
		Slug: "robot-dogs",
	})
	verrs, ok := AsValidation(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, []string{"category with this slug already exists."}, verrs["slug"])
	assert.EqualValues(t, 1, countRows(t, f.db, &models.Category{}))
}

func TestCreateCategoryGivesUpAfterRepeatedRaces(t *testing.T) {
	f := newFixture(t)
	f.category(t, "Robot dogs")

	racing := NewCatalogService(
		&staleCategories{CategoryRepositoryImpl: repositories.NewCategoryRepository(f.db), stale: 100},
		repositories.NewProductRepository(f.db),
		quietLogger(),
	)
	_, err := racing.CreateCategory(context.Background(), CategoryInput{Name: models.NewText("Robot dogs", "", "")})
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrSlugTaken)
	_, isValidation := AsValidation(err)
	assert.False(t, isValidation)
}

func TestCreateProductValidation(t *testing.T) {
	f := newFixture(t)

	in := NewProductInput()
	in.CategorySlug = "missing"
	in.Quantity = -1
	_, err := f.catalog.CreateProduct(context.Background(), in)
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("product_name"))
	assert.True(t, verrs.Has("product_quantity"))
	assert.True(t, verrs.Has("category"))

	in = ProductInput{}
	in.Name = models.NewText("Go2", "", "")
	_, err = f.catalog.CreateProduct(context.Background(), in)
	verrs, ok = AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("product_category"))
}

func TestUpdateProductKeepsSlug(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	p := f.product(t, cat.Slug, "Go2", true, true)

	in := NewProductInput()
	in.Name = models.NewText("Go2 Edu", "", "")
	in.Slug = "go2-edu"
	updated, err := f.catalog.UpdateProduct(context.Background(), p.Slug, in)
	require.NoError(t, err)
	assert.Equal(t, "go2", updated.Slug)
	assert.Equal(t, "Go2 Edu", updated.Name.En)
	assert.Equal(t, cat.ID, updated.CategoryID)

	_, err = f.catalog.UpdateProduct(context.Background(), "nope", in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategoryCascades(t *testing.T) {
	f := newFixture(t)
	cat := f.category(t, "Robot dogs")
	p := f.product(t, cat.Slug, "Go2", true, true)
	_, err := f.submissions.SubmitOrder(context.Background(), validOrder(p.ID))
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteCategory(context.Background(), cat.Slug))
	assert.Zero(t, countRows(t, f.db, &models.Product{}))
	assert.Zero(t, countRows(t, f.db, &models.Order{}))

	assert.ErrorIs(t, f.catalog.DeleteCategory(context.Background(), cat.Slug), ErrNotFound)
}

func TestSiteServiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.site.SaveAbout(ctx, &models.AboutCompany{})
	_, ok := AsValidation(err)
	assert.True(t, ok)

	err = f.site.SaveContactInfo(ctx, &models.ContactInfo{
		Title:     models.NewText("Contacts", "", ""),
		Locations: []models.ShowroomLocation{{Lat: 120}},
	})
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("locations[0].lat"))

	err = f.site.AddSplineModel(ctx, &models.SplineModelUrl{SplineURL: "not a url"})
	_, ok = AsValidation(err)
	assert.True(t, ok)

	require.NoError(t, f.site.SaveRobotModel(ctx, &models.RobotModel3D{GlbFile: "models/a.glb"}))
}

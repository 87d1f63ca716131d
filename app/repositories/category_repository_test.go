package repositories

import (
	"context"
	"testing"

	"github.com/hitechrobotics/catalog-api/app/db/dbtest"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesWithProducts(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	dogs := seedCategory(t, db, "dogs", models.NewText("Dogs", "", ""))
	seedCategory(t, db, "empty", models.NewText("Empty", "", ""))
	seedProduct(t, db, dogs, "go2", nil)
	seedProduct(t, db, dogs, "b2", nil)

	got, total, err := repo.GetCategoriesWithProducts(ctx, 12, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "empty", got[0].Slug)
	assert.Empty(t, got[0].Products)
	assert.Len(t, got[1].Products, 2)

	got, _, err = repo.GetCategoriesWithProducts(ctx, 12, 12)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCategoryDeleteRemovesProducts(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	dogs := seedCategory(t, db, "dogs", models.NewText("Dogs", "", ""))
	other := seedCategory(t, db, "other", models.NewText("Other", "", ""))
	seedProduct(t, db, dogs, "go2", func(p *models.Product) {
		p.Images = []models.ProductImage{{Image: "x.png"}}
	})
	seedProduct(t, db, other, "h1", nil)

	require.NoError(t, repo.Delete(ctx, dogs.ID))

	gone, err := repo.GetBySlug(ctx, "dogs")
	require.NoError(t, err)
	assert.Nil(t, gone)

	var products, images int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&images).Error)
	assert.EqualValues(t, 1, products)
	assert.Zero(t, images)

	exists, err := repo.SlugExists(ctx, "other")
	require.NoError(t, err)
	assert.True(t, exists)
}

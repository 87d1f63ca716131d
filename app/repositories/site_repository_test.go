package repositories

import (
	"context"
	"testing"

	"github.com/hitechrobotics/catalog-api/app/db/dbtest"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutSingleton(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewSiteRepository(db)
	ctx := context.Background()

	none, err := repo.GetAbout(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.SaveAbout(ctx, &models.AboutCompany{
		Title:    models.NewText("About", "", ""),
		Features: []models.AboutFeature{{Text: models.NewText("one", "", "")}, {Text: models.NewText("two", "", "")}},
	}))
	require.NoError(t, repo.SaveAbout(ctx, &models.AboutCompany{
		Title:    models.NewText("About us", "О нас", ""),
		Features: []models.AboutFeature{{Text: models.NewText("only", "", "")}},
	}))

	var rows int64
	require.NoError(t, db.Model(&models.AboutCompany{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	about, err := repo.GetAbout(ctx)
	require.NoError(t, err)
	require.NotNil(t, about)
	assert.Equal(t, "О нас", about.Title.Ru)
	require.Len(t, about.Features, 1)
	assert.Equal(t, "only", about.Features[0].Text.En)
}

func TestContactInfoLocations(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewSiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveContactInfo(ctx, &models.ContactInfo{
		Title:     models.NewText("Contacts", "", ""),
		Locations: []models.ShowroomLocation{{City: "Tashkent"}, {City: "Samarkand"}},
	}))
	require.NoError(t, repo.SaveContactInfo(ctx, &models.ContactInfo{
		Title:     models.NewText("Contacts", "", ""),
		Locations: []models.ShowroomLocation{{City: "Bukhara"}},
	}))

	info, err := repo.GetContactInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	require.Len(t, info.Locations, 1)
	assert.Equal(t, "Bukhara", info.Locations[0].City)

	var locations int64
	require.NoError(t, db.Model(&models.ShowroomLocation{}).Count(&locations).Error)
	assert.EqualValues(t, 3, locations, "unlinked locations are kept")
}

func TestHeroAndModelSingletons(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewSiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveHero(ctx, &models.RoboticsHero{Image: "a.jpg"}))
	require.NoError(t, repo.SaveHero(ctx, &models.RoboticsHero{Image: "b.jpg"}))
	hero, err := repo.GetHero(ctx)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, "b.jpg", hero.Image)
	assert.Equal(t, models.SingletonID, hero.ID)

	m, err := repo.GetRobotModel(ctx)
	require.NoError(t, err)
	assert.Nil(t, m)
	require.NoError(t, repo.SaveRobotModel(ctx, &models.RobotModel3D{GlbFile: "models/a.glb"}))
	m, err = repo.GetRobotModel(ctx)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "models/a.glb", m.GlbFile)
}

func TestSplineAndPhoneLists(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewSiteRepository(db)
	ctx := context.Background()

	models3d, err := repo.GetSplineModels(ctx)
	require.NoError(t, err)
	assert.NotNil(t, models3d)
	assert.Empty(t, models3d)

	url, err := repo.FirstSplineURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", url)

	require.NoError(t, repo.AddSplineModel(ctx, &models.SplineModelUrl{SplineURL: ""}))
	require.NoError(t, repo.AddSplineModel(ctx, &models.SplineModelUrl{SplineURL: "https://prod.spline.design/a/scene.splinecode"}))
	require.NoError(t, repo.AddSplineModel(ctx, &models.SplineModelUrl{SplineURL: "https://prod.spline.design/b/scene.splinecode"}))

	url, err = repo.FirstSplineURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://prod.spline.design/a/scene.splinecode", url)

	require.NoError(t, repo.AddPhoneNumber(ctx, &models.PhoneNumber{PhoneNumber: "+998 71 200 00 00"}))
	phones, err := repo.GetPhoneNumbers(ctx)
	require.NoError(t, err)
	require.Len(t, phones, 1)
}

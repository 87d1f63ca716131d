package routes

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hitechrobotics/catalog-api/app/configs"
	"github.com/hitechrobotics/catalog-api/app/handlers"
	"github.com/hitechrobotics/catalog-api/app/handlers/admin"
	"github.com/hitechrobotics/catalog-api/app/middlewares"
	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/hitechrobotics/catalog-api/app/utils/renderer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// handle registers path with and without its trailing slash.
func handle(r *mux.Router, path string, h http.HandlerFunc, methods ...string) {
	r.HandleFunc(path, h).Methods(methods...)
	if trimmed := strings.TrimSuffix(path, "/"); trimmed != "" && trimmed != path {
		r.HandleFunc(trimmed, h).Methods(methods...)
	}
}

// NewRouter wires every route. The returned handler strips an optional
// /en, /ru or /uz prefix before routing.
func NewRouter(db *gorm.DB, env configs.ENV, logger *slog.Logger) http.Handler {
	rnd := renderer.New(env.APP_ENV == "development")

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	siteRepo := repositories.NewSiteRepository(db)

	catalogSvc := services.NewCatalogService(categoryRepo, productRepo, logger)
	siteSvc := services.NewSiteService(siteRepo, logger)
	submissionSvc := services.NewSubmissionService(productRepo, orderRepo, contactRepo, env.PhoneMinDigits, env.PhoneMaxDigits, logger)
	splineProxy := services.NewSplineProxy(siteRepo, env.SplineDefaultURL, env.SplineProxyTimeout, logger)

	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, rnd, env.MediaURL, env.PageSize, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, rnd, env.MediaURL, env.PageSize, logger)
	submissionHandler := handlers.NewSubmissionHandler(submissionSvc, rnd, env.MediaURL, logger)
	siteHandler := handlers.NewSiteHandler(siteRepo, splineProxy, rnd, env.MediaURL, logger)
	healthHandler := handlers.NewHealthHandler(rnd, db, logger)
	adminHandler := admin.NewAdminHandler(rnd, catalogSvc, siteSvc, submissionSvc, env.MediaURL, env.PageSize, logger)

	requestLog := middlewares.RequestLogger(logger.With(slog.String("component", "http")))
	// mux skips router middlewares when nothing matched, so the 404 and 405
	// handlers carry their own logging and metrics.
	unmatched := func(h http.HandlerFunc) http.Handler {
		return requestLog(middlewares.MetricsMiddleware(h))
	}

	router := mux.NewRouter()
	router.Use(requestLog)
	router.Use(middlewares.MetricsMiddleware)

	router.NotFoundHandler = unmatched(func(w http.ResponseWriter, r *http.Request) {
		_ = rnd.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})
	router.MethodNotAllowedHandler = unmatched(func(w http.ResponseWriter, r *http.Request) {
		_ = rnd.JSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method \"" + r.Method + "\" not allowed."})
	})

	router.HandleFunc("/healthz", healthHandler.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if env.MediaRoot != "" {
		router.PathPrefix(env.MediaURL).Handler(
			http.StripPrefix(env.MediaURL, http.FileServer(http.Dir(env.MediaRoot))),
		).Methods(http.MethodGet, http.MethodHead)
	}

	api := router.PathPrefix("/api").Subrouter()

	handle(api, "/products/", productHandler.Products, http.MethodGet)
	handle(api, "/products/search/", productHandler.Search, http.MethodGet)
	handle(api, "/products/categories/{slug}/", productHandler.CategoryLanding, http.MethodGet)
	handle(api, "/products/{slug}/", productHandler.ProductDetail, http.MethodGet)
	handle(api, "/categories/", categoryHandler.Categories, http.MethodGet)

	handle(api, "/submit-order/", submissionHandler.SubmitOrder, http.MethodPost)
	handle(api, "/order-page/", submissionHandler.SubmitOrder, http.MethodPost)
	handle(api, "/contact/", submissionHandler.SubmitContact, http.MethodPost)

	handle(api, "/about-us/", siteHandler.About, http.MethodGet)
	handle(api, "/about-company/", siteHandler.About, http.MethodGet)
	handle(api, "/contact-info/", siteHandler.ContactInfo, http.MethodGet)
	handle(api, "/mobile-hero/", siteHandler.MobileHero, http.MethodGet)
	handle(api, "/models/", siteHandler.RobotModel, http.MethodGet)
	handle(api, "/spline-models/", siteHandler.SplineModels, http.MethodGet)
	handle(api, "/spline-proxy/", siteHandler.SplineProxy, http.MethodGet)
	handle(api, "/phone-number/", siteHandler.PhoneNumbers, http.MethodGet)

	adminRouter := router.PathPrefix("/admin/api").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(env.AdminAPIKey, logger.With(slog.String("component", "admin_auth"))))

	handle(adminRouter, "/categories/", adminHandler.AddCategory, http.MethodPost)
	handle(adminRouter, "/categories/{slug}/", adminHandler.DeleteCategory, http.MethodDelete)
	handle(adminRouter, "/products/", adminHandler.AddProduct, http.MethodPost)
	handle(adminRouter, "/products/{slug}/", adminHandler.UpdateProduct, http.MethodPut)
	handle(adminRouter, "/products/{slug}/", adminHandler.DeleteProduct, http.MethodDelete)
	handle(adminRouter, "/about-us/", adminHandler.SaveAbout, http.MethodPut)
	handle(adminRouter, "/contact-info/", adminHandler.SaveContactInfo, http.MethodPut)
	handle(adminRouter, "/mobile-hero/", adminHandler.SaveHero, http.MethodPut)
	handle(adminRouter, "/models/", adminHandler.SaveRobotModel, http.MethodPut)
	handle(adminRouter, "/spline-models/", adminHandler.AddSplineModel, http.MethodPost)
	handle(adminRouter, "/phone-number/", adminHandler.AddPhoneNumber, http.MethodPost)
	handle(adminRouter, "/orders/", adminHandler.Orders, http.MethodGet)
	handle(adminRouter, "/contact-messages/", adminHandler.ContactMessages, http.MethodGet)

	return middlewares.RequestIDMiddleware(middlewares.LocaleMiddleware(router))
}

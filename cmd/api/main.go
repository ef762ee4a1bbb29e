package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"evermore/internal/adapter/imagesource"
	"evermore/internal/config"
	"evermore/internal/database"
	"evermore/internal/logger"
	"evermore/internal/middleware"
	"evermore/internal/modules/access"
	"evermore/internal/modules/admin"
	"evermore/internal/modules/analytics"
	"evermore/internal/modules/contact"
	"evermore/internal/modules/download"
	"evermore/internal/modules/favorite"
	"evermore/internal/modules/gallery"
	"evermore/internal/modules/partner"
	"evermore/internal/modules/ratelimit"
	"evermore/internal/modules/session"
	"evermore/internal/modules/showcase"
	"evermore/internal/pkg/cloudinary"
	"evermore/internal/pkg/kvstore"
	"evermore/internal/pkg/token"
	"evermore/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	galleryRepo := repository.NewClientGalleryRepository(db)
	imageRepo := repository.NewClientImageRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	downloadRepo := repository.NewDownloadRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	contactRepo := repository.NewContactRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	showcaseRepo := repository.NewShowcaseRepository(db)

	urls := cloudinary.NewBuilder(cfg.CloudinaryCloudName)
	tokens := token.New(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewStore(kvstore.NewMemory(), tokens, cfg.SessionTTL)
	limiter := ratelimit.New(kvstore.NewMemory(), cfg.RateLimitMaxAttempts, cfg.RateLimitBlock)

	// Originals come from the object store when configured, the CDN otherwise.
	var source imagesource.Source
	var uploader admin.ImageUploader
	var thumbnailer *gallery.Thumbnailer
	if cfg.S3Configured() {
		s3src, err := imagesource.NewS3Source(context.Background(), cfg)
		if err != nil {
			log.Fatal(err)
		}
		source = s3src
		uploader = s3src
		thumbnailer = gallery.NewThumbnailer(s3src, logg)
	} else {
		source = imagesource.NewCDNSource(urls)
	}

	accessService := access.NewService(galleryRepo, limiter, sessions, logg)
	accessHandler := access.NewHandler(accessService)

	favoriteManager := favorite.NewManager(favoriteRepo, logg)
	favoriteHandler := favorite.NewHandler(favoriteManager)

	viewer := gallery.NewViewer(galleryRepo, imageRepo, favoriteManager, urls, logg)
	galleryHandler := gallery.NewHandler(viewer, thumbnailer)

	hub := download.NewHub()
	defer hub.Close()
	bundler := download.NewBundler(source, cfg.ZipCompressionLevel, logg)
	downloadService := download.NewService(galleryRepo, imageRepo, favoriteManager, bundler, hub, downloadRepo, logg)
	downloadHandler := download.NewHandler(downloadService, hub)

	analyticsService := analytics.NewService(analyticsRepo, logg)
	analyticsHandler := analytics.NewHandler(analyticsService)

	contactService := contact.NewService(contactRepo, logg)
	contactHandler := contact.NewHandler(contactService)

	partnerService := partner.NewService(partnerRepo, logg)
	partnerHandler := partner.NewHandler(partnerService)

	showcaseService := showcase.NewService(showcaseRepo, urls)
	showcaseHandler := showcase.NewHandler(showcaseService)

	adminService := admin.NewService(galleryRepo, imageRepo, downloadRepo, analyticsRepo,
		uploader, cfg.AdminToken, cfg.AdminPasswordHash, logg)
	adminHandler := admin.NewHandler(adminService, showcaseService, contactService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger(logg))

	v1 := r.Group("/api/v1")
	{
		// public
		accessHandler.RegisterRoutes(v1)
		contactHandler.RegisterRoutes(v1)
		partnerHandler.RegisterRoutes(v1)
		showcaseHandler.RegisterRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)

		// gallery session required
		protected := v1.Group("/")
		protected.Use(middleware.GallerySession(sessions))
		{
			galleryHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			downloadHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
		}

		// admin token required
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.AdminToken(cfg.AdminToken, logg))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	logg.Info("starting server", "port", cfg.ServerPort, "env", cfg.AppEnv)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/paintconnect/storefront/internal/auth"
	"github.com/paintconnect/storefront/internal/cart"
	"github.com/paintconnect/storefront/internal/config"
	"github.com/paintconnect/storefront/internal/db"
	"github.com/paintconnect/storefront/internal/es"
	"github.com/paintconnect/storefront/internal/handlers"
	"github.com/paintconnect/storefront/internal/logging"
	loggingmw "github.com/paintconnect/storefront/internal/middleware/logging"
	"github.com/paintconnect/storefront/internal/mykafka"
	"github.com/paintconnect/storefront/internal/repo"
	"github.com/paintconnect/storefront/internal/service"
	httpserver "github.com/paintconnect/storefront/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	database, err := db.Open(ctx, configuration.DATABASE_URL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatalf("elasticsearch init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	refreshSecret := []byte(configuration.REFRESH_SECRET)

	gormRepo := &repo.GormRepo{DB: database}
	catalogSvc := &service.CatalogService{Repo: gormRepo}
	categorySvc := &service.CategoryService{Repo: gormRepo}
	settingsSvc := &service.SettingsService{Repo: gormRepo}
	messageSvc := &service.MessageService{Repo: gormRepo}
	authSvc := &auth.AuthService{Repo: gormRepo, JWTSecret: jwtSecret, RefreshSecret: refreshSecret}
	cartStore := cart.NewStore()

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:        database,
		JWTSecret: jwtSecret,
		CatalogHandler: &handlers.CatalogHandler{
			Svc:        catalogSvc,
			Categories: categorySvc,
			Settings:   settingsSvc,
		},
		ProductAdmin: &handlers.ProductAdminHandler{
			Svc:        catalogSvc,
			Categories: categorySvc,
			Producer:   producer,
			ES:         esClient,
			ESIndex:    configuration.ES_INDEX,
		},
		CategoryHandler: &handlers.CategoryHandler{Svc: categorySvc},
		SettingsHandler: &handlers.SettingsHandler{Svc: settingsSvc},
		MessageHandler:  &handlers.MessageHandler{Svc: messageSvc, Producer: producer},
		CartHandler: &handlers.CartHandler{
			Store:    cartStore,
			Catalog:  catalogSvc,
			Settings: settingsSvc,
			Producer: producer,
		},
		AuthHandler: &handlers.AuthHandler{Svc: authSvc, Producer: producer},
	}
	if esClient != nil {
		deps.SearchHandler = &handlers.SearchHandler{ES: esClient, Index: configuration.ES_INDEX}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}

package main

import (
	"log"
	"net/http"
	"os"

	_ "moveit/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"moveit/internal/auth"
	"moveit/internal/cache"
	"moveit/internal/config"
	"moveit/internal/db"
	"moveit/internal/handler"
	"moveit/internal/model"
	"moveit/internal/repository"
	"moveit/internal/router"
	"moveit/internal/service"
)

// @title Move It Car Rental API
// @version 1.0
// @description Car rental API with user accounts, car inventory, brands, bookings and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.Car{},
			&model.CarBrand{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CarBrand{},
		&model.Car{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	brandRepo := repository.NewBrandRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	carService := service.NewCarService(carRepo, cacheClient)
	brandService := service.NewBrandService(brandRepo)
	bookingService := service.NewBookingService(bookingRepo, carRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	carHandler := handler.NewCarHandler(carService)
	brandHandler := handler.NewBrandHandler(brandService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		carHandler,
		brandHandler,
		bookingHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Server is running on port %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

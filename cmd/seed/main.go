package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moveit/internal/auth"
	"moveit/internal/config"
	"moveit/internal/db"
	"moveit/internal/model"
	"moveit/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CarBrand{},
		&model.Car{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	count, err := seedInventory(ctx, gormDB)
	if err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	log.Printf("Seed completed, %d cars available", count)
}

// seedAdmin creates the initial ADMIN user unless one with the same email
// already exists. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	email := envOr("ADMIN_EMAIL", "admin@moveit-rentals.com")
	password := envOr("ADMIN_PASSWORD", "admin123")

	userRepo := repository.NewUserRepository(gormDB)
	if existing, err := userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:       email,
		Password:    hashed,
		FirstName:   "Move It",
		LastName:    "Admin",
		PhoneNumber: "000",
		Role:        model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

// seedInventory inserts a couple of brands and cars when the inventory is
// empty, so a fresh environment has something to rent.
func seedInventory(ctx context.Context, gormDB *gorm.DB) (int, error) {
	carRepo := repository.NewCarRepository(gormDB)
	brandRepo := repository.NewBrandRepository(gormDB)

	existing, err := carRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Inventory already has %d cars, skipping", len(existing))
		return len(existing), nil
	}

	brands := []struct {
		name  string
		image string
		cars  []model.Car
	}{
		{
			name:  "Toyota",
			image: "https://cdn.moveit-rentals.com/brands/toyota.png",
			cars: []model.Car{
				{
					Name:              "Corolla",
					PlateNumber:       "KDA 001A",
					Status:            model.CarStatusAvailable,
					PricePerDay:       decimal.NewFromInt(45),
					PassengerCapacity: 5,
					Description:       "Reliable compact sedan",
					Images:            []string{"https://cdn.moveit-rentals.com/cars/corolla.jpg"},
					Features:          []string{"Bluetooth", "Air Conditioning"},
				},
				{
					Name:              "Land Cruiser",
					PlateNumber:       "KDA 002B",
					Status:            model.CarStatusAvailable,
					PricePerDay:       decimal.NewFromInt(120),
					PassengerCapacity: 7,
					Description:       "Full-size off-road SUV",
					Images:            []string{"https://cdn.moveit-rentals.com/cars/landcruiser.jpg"},
					Features:          []string{"4WD", "Sunroof", "Leather Seats"},
				},
			},
		},
		{
			name:  "BMW",
			image: "https://cdn.moveit-rentals.com/brands/bmw.png",
			cars: []model.Car{
				{
					Name:              "X5",
					PlateNumber:       "KDB 010C",
					Status:            model.CarStatusAvailable,
					PricePerDay:       decimal.NewFromInt(150),
					PassengerCapacity: 5,
					Description:       "Luxury midsize SUV",
					Images:            []string{"https://cdn.moveit-rentals.com/cars/x5.jpg"},
					Features:          []string{"Navigation", "Heated Seats", "Parking Assist"},
				},
			},
		},
	}

	total := 0
	for _, b := range brands {
		brand := &model.CarBrand{Name: b.name, Image: b.image}
		if err := brandRepo.Create(ctx, brand); err != nil {
			return total, err
		}
		for i := range b.cars {
			b.cars[i].BrandID = brand.ID
			if err := carRepo.Create(ctx, &b.cars[i]); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pethotel-backend/constants"
	"pethotel-backend/models"
)

var DB *gorm.DB

func getDSN() string {
	user := GetEnvOrDefault("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	host := GetEnvOrDefault("DB_HOST", "127.0.0.1")
	port := GetEnvOrDefault("DB_PORT", "5432")
	name := GetEnvOrDefault("DB_NAME", "pethotel")
	sslMode := GetEnvOrDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=America/Guatemala",
		host, user, password, name, port, sslMode)
}

// ConnectDB opens the database, migrates the schema and seeds defaults.
func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(getDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Operator{},
		&models.Customer{},
		&models.Pet{},
		&models.Employee{},
		&models.Service{},
		&models.Room{},
		&models.Reservation{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	SeedDatabase()

	fmt.Println("Successfully connected to db")
}

// SeedDatabase ensures a default operator account and the add-on service
// catalog exist on a fresh database.
func SeedDatabase() {
	var operatorCount int64
	DB.Model(&models.Operator{}).Count(&operatorCount)
	if operatorCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(GetEnvOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default operator password: %v", err)
		} else {
			operator := models.Operator{
				FullName: "Administrator",
				Email:    "admin@pethotel.local",
				Password: string(hash),
				Role:     constants.RoleAdmin,
			}
			if err := DB.Create(&operator).Error; err != nil {
				log.Printf("warning: failed to create default operator: %v", err)
			} else {
				log.Println("Default operator seeded")
			}
		}
	}

	var serviceCount int64
	DB.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		now := time.Now()
		services := []models.Service{
			{Name: "Grooming Service", Price: 50, Duration: 60, IsActive: true, CreatedAt: now},
			{Name: "Bath", Price: 30, Duration: 45, IsActive: true, CreatedAt: now},
			{Name: "Deworming", Price: 20, Duration: 20, IsActive: true, CreatedAt: now},
			{Name: "Special Nutrition", Price: 15, Duration: 30, IsActive: true, CreatedAt: now},
			{Name: "Daily Walks", Price: 25, Duration: 40, IsActive: true, CreatedAt: now},
			{Name: "Veterinarian", Price: 75, Duration: 30, IsActive: true, CreatedAt: now},
			{Name: "Massage", Price: 40, Duration: 30, IsActive: true, CreatedAt: now},
			{Name: "Manicure", Price: 10, Duration: 15, IsActive: true, CreatedAt: now},
			{Name: "Pedicure", Price: 10, Duration: 15, IsActive: true, CreatedAt: now},
		}
		if err := DB.Create(&services).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Service catalog seeded")
		}
	}
}

package config

import (
	"log"

	"github.com/Devjv2007/ecommerce-apple/models"
	"github.com/Devjv2007/ecommerce-apple/utils"

	"gorm.io/gorm"
)

func SeedUsers(db *gorm.DB) {
	log.Println("Seeding users...")

	password, _ := utils.HashPassword("admin123")

	users := []models.User{
		{
			Name:         "Administrador",
			Email:        "admin@example.com",
			PasswordHash: password,
		},
	}

	for _, user := range users {
		var existingUser models.User
		if err := db.Where("email = ?", user.Email).First(&existingUser).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&user).Error; err != nil {
					log.Printf("Failed to seed user %s: %v", user.Email, err)
				} else {
					log.Printf("User seeded: %s (ID: %d)", user.Email, user.ID)
				}
			}
		} else {
			log.Printf("User already exists: %s", user.Email)
		}
	}

	log.Println("User seeding complete.")
}

func SeedProducts(db *gorm.DB) {
	log.Println("Seeding products...")

	products := []models.Product{
		{
			Name:        "iPhone 15 Pro",
			Description: "iPhone 15 Pro 256GB Titânio Natural",
			Price:       7999.00,
			ImageURL:    "/uploads/products/iphone-15-pro.png",
		},
		{
			Name:        "AirPods Pro 2",
			Description: "AirPods Pro 2ª geração com estojo MagSafe",
			Price:       1899.00,
			ImageURL:    "/uploads/products/airpods-pro-2.png",
		},
		{
			Name:        "iPad Air",
			Description: "iPad Air 11 polegadas chip M2",
			Price:       5299.00,
			ImageURL:    "/uploads/products/ipad-air.png",
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := db.Where("nome = ?", product.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&product).Error; err != nil {
					log.Printf("Failed to seed product %s: %v", product.Name, err)
				} else {
					log.Printf("Product seeded: %s (ID: %d)", product.Name, product.ID)
				}
			}
		} else {
			log.Printf("Product already exists: %s", product.Name)
		}
	}

	log.Println("Product seeding complete.")
}

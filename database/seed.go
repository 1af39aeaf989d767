package database

import (
	"log"

	"repair_shop/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme1"), 10)
	hashedPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	mechanics := []model.Mechanic{
		{Name: "Shop Admin", Email: "admin@repairshop.local", Phone: "0000000000", Salary: 0, Password: hashedPassword},
	}
	for _, mechanic := range mechanics {
		if err := db.Where(model.Mechanic{Email: mechanic.Email}).FirstOrCreate(&mechanic).Error; err != nil {
			log.Println("failed to seed mechanic:", mechanic.Email, "error:", err)
		}
	}

	parts := []model.Inventory{
		{Name: "Oil Filter", Price: 12.99, Sku: "oil-filter"},
		{Name: "Brake Pad Set", Price: 54.50, Sku: "brake-pad-set"},
		{Name: "Wiper Blade", Price: 8.75, Sku: "wiper-blade"},
	}
	for _, part := range parts {
		if err := db.Where(model.Inventory{Sku: part.Sku}).FirstOrCreate(&part).Error; err != nil {
			log.Println("failed to seed part:", part.Name, "error:", err)
		}
	}
}

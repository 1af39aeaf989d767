package database

import (
	"fmt"
	"strconv"

	"repair_shop/config"
	"repair_shop/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic("failed to migrate database: " + err.Error())
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate runs AutoMigrate for every entity. Split out so the test suite
// can run the same schema against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Customer{},
		&model.Mechanic{},
		&model.Ticket{},
		&model.Inventory{},
		&model.TicketInventory{},
		&model.PasswordResetToken{},
	)
}

package database

import (
	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Email:     "admin@cinema.local",
		Password:  string(bytes),
		FirstName: "Admin",
		Role:      constants.ROLE_ADMIN,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}

	genres := []model.Genre{
		{Name: "Action"},
		{Name: "Comedy"},
		{Name: "Drama"},
		{Name: "Horror"},
		{Name: "Sci-Fi"},
	}
	for _, genre := range genres {
		if err := db.Where(model.Genre{Name: genre.Name}).FirstOrCreate(&genre).Error; err != nil {
			log.Println("failed to seed genre:", genre.Name, "error:", err)
		}
	}

	hall := model.CinemaHall{Name: "Blue", Rows: 10, SeatsInRow: 12}
	if err := db.Where(model.CinemaHall{Name: hall.Name}).FirstOrCreate(&hall).Error; err != nil {
		log.Println("failed to seed cinema hall:", err)
	}
}

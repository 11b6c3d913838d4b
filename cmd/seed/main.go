package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/equiptrack/backend/config"
	"github.com/equiptrack/backend/database"
	"github.com/equiptrack/backend/models"
	"github.com/equiptrack/backend/store"
	"github.com/joho/godotenv"
)

var sampleDepartments = []string{
	"Human resource", "Finance", "Engineering", "Operations", "Legal",
}

var sampleManufacturers = []string{
	"HP", "Dell", "Lenovo", "Apple",
}

func main() {
	samples := flag.Int("samples", 0, "number of sample employee records to insert")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	seedAdmin(store.NewUserStore(db))

	if *samples > 0 {
		seedEmployees(store.NewEmployeeStore(db), *samples)
	}
}

// seedAdmin ensures the initial login exists so a fresh deployment is usable.
func seedAdmin(users *store.UserStore) {
	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = "admin@equiptrack.local"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	if _, err := users.Register(email, password); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Printf("Admin user %s already exists, skipping", email)
			return
		}
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user %s seeded successfully", email)
}

func seedEmployees(employees *store.EmployeeStore, count int) {
	created := 0
	for i := 0; i < count; i++ {
		email := fmt.Sprintf("employee%03d@equiptrack.local", i)
		record := models.Employee{
			Firstname:          fmt.Sprintf("Sample%03d", i),
			Lastname:           "Employee",
			NationalIdentity:   fmt.Sprintf("1200071091%04d", i),
			Telephone:          fmt.Sprintf("07880%05d", i),
			Email:              &email,
			Department:         sampleDepartments[i%len(sampleDepartments)],
			Position:           "Staff",
			LaptopManufacturer: sampleManufacturers[i%len(sampleManufacturers)],
			Model:              fmt.Sprintf("Model-%d", i%7),
			SerialNumber:       fmt.Sprintf("SN-%06d", i),
		}
		if err := employees.Insert(&record); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				continue
			}
			log.Printf("❌ Failed to seed employee %d: %v", i, err)
			continue
		}
		created++
	}
	log.Printf("✅ Seeded %d sample employee records", created)
}

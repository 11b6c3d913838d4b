package models

import (
	"time"
)

// Employee is one laptop-assignment record. Rows are insert-only; the three
// unique columns are enforced by the database, not by application pre-checks.
type Employee struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Firstname          string    `gorm:"not null" json:"firstname"`
	Lastname           string    `gorm:"not null" json:"lastname"`
	NationalIdentity   string    `gorm:"column:national_identity;uniqueIndex;not null" json:"nationalIdentity"`
	Telephone          string    `json:"telephone"`
	Email              *string   `gorm:"uniqueIndex" json:"email"`
	Department         string    `json:"department"`
	Position           string    `json:"position"`
	LaptopManufacturer string    `json:"laptop_manufacturer"`
	Model              string    `json:"model"`
	SerialNumber       string    `gorm:"uniqueIndex;not null" json:"serial_number"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employee_laptops"
}

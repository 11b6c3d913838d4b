package store

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/equiptrack/backend/models"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmployeePage is one page of laptop-assignment records.
type EmployeePage struct {
	Employees []models.Employee `json:"employees"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Pages     int               `json:"pages"`
}

// EmployeeStore persists laptop-assignment records.
type EmployeeStore struct {
	db *gorm.DB
}

func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// Insert stores a new record. Firstname, lastname and national identity are
// mandatory; email must be email-shaped when present. Unique collisions are
// decided by the database constraints, never by a pre-check.
func (s *EmployeeStore) Insert(e *models.Employee) error {
	if e.Firstname == "" || e.Lastname == "" || e.NationalIdentity == "" {
		return fmt.Errorf("%w: firstname, lastname and nationalIdentity are required", ErrInvalidInput)
	}
	if e.Email != nil && !emailPattern.MatchString(*e.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if err := s.db.Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// ListPage returns at most limit records starting at (page-1)*limit, ordered
// by id so pagination is stable. Non-positive page or limit clamp to 1. The
// count and the page are two separate queries; a write in between can skew
// pages for that one response.
func (s *EmployeeStore) ListPage(page, limit int) (*EmployeePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	var employees []models.Employee
	if err := s.db.Order("id ASC").Limit(limit).Offset(offset).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &EmployeePage{
		Employees: employees,
		Total:     total,
		Page:      page,
		Pages:     pages,
	}, nil
}

// FindByID returns the record or ErrNotFound.
func (s *EmployeeStore) FindByID(id uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return &e, nil
}

// ListAll returns every record in the same order the paginated path uses.
func (s *EmployeeStore) ListAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

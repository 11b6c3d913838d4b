package store

import (
	"errors"
	"fmt"

	"github.com/equiptrack/backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore persists user credentials. The password column only ever holds
// a bcrypt hash.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the password and inserts the user. The unique index on
// email is the arbiter for concurrent registrations.
func (s *UserStore) Register(email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Verify compares the plaintext against the stored bcrypt hash. Returns
// ErrNotFound when no user has the given email.
func (s *UserStore) Verify(email, password string) (bool, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// FindByEmail returns the full row, hash included. Used by the login path.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// FindByID projects out the password hash.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Select("id", "email", "created_at", "updated_at").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// ListAll projects out the password hash.
func (s *UserStore) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Select("id", "email", "created_at", "updated_at").
		Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

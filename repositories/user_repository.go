// File: /repositories/user_repository.go
package repositories

import (
	"gorm.io/gorm"

	"sportmate-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches the email case-insensitively.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByMobile matches the mobile number exactly.
func (r *UserRepository) FindByMobile(mobileNumber string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("mobile_number = ?", mobileNumber).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

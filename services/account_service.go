// File: /services/account_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"sportmate-api/models"
	"sportmate-api/repositories"
)

// Registration and login outcomes. Passwords are stored and compared
// as given; there is no credential hardening in this system.
var (
	ErrMobileRegistered   = errors.New("mobile number already registered")
	ErrEmailRegistered    = errors.New("email address already registered")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrAccountNotFound    = errors.New("email not registered")
	ErrWrongPassword      = errors.New("incorrect password")
)

// AccountService is the local user directory: registration with
// duplicate detection and a credential check. It never touches event
// state.
type AccountService struct {
	userRepo *repositories.UserRepository
}

func NewAccountService(userRepo *repositories.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Register appends the user unless an existing account shares the
// mobile number or email. The mobile number is checked first and only
// the first matching reason is reported.
func (s *AccountService) Register(user *models.User) error {
	if _, err := s.userRepo.FindByMobile(user.MobileNumber); err == nil {
		return ErrMobileRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.userRepo.FindByEmail(user.Email); err == nil {
		return ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.userRepo.Create(user)
}

// Authenticate resolves the account by case-insensitive email and
// compares the stored password. Read-only.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if user.Password != password {
		return nil, ErrWrongPassword
	}

	return user, nil
}

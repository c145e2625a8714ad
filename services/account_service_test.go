// File: /services/account_service_test.go
package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportmate-api/models"
	"sportmate-api/repositories"
	"sportmate-api/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Sport{}, &models.Event{}))
	return db
}

func newAccountService(t *testing.T) *services.AccountService {
	t.Helper()
	return services.NewAccountService(repositories.NewUserRepository(setupTestDB(t)))
}

func testUser(id, mobile, email string) *models.User {
	return &models.User{
		ID:           id,
		FirstName:    "Alice",
		LastName:     "Smith",
		MobileNumber: mobile,
		Email:        email,
		Password:     "Passw0rd!",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newAccountService(t)

	require.NoError(t, svc.Register(testUser("u1", "9876543210", "alice@example.com")))

	user, err := svc.Authenticate("alice@example.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestRegisterDuplicateMobileCheckedBeforeEmail(t *testing.T) {
	svc := newAccountService(t)

	require.NoError(t, svc.Register(testUser("u1", "9876543210", "alice@example.com")))

	// Same mobile and same email: the mobile reason wins.
	err := svc.Register(testUser("u2", "9876543210", "alice@example.com"))
	assert.ErrorIs(t, err, services.ErrMobileRegistered)

	// Same mobile, different email.
	err = svc.Register(testUser("u3", "9876543210", "bob@example.com"))
	assert.ErrorIs(t, err, services.ErrMobileRegistered)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newAccountService(t)

	require.NoError(t, svc.Register(testUser("u1", "9876543210", "alice@example.com")))

	err := svc.Register(testUser("u2", "1112223334", "ALICE@Example.COM"))
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
}

func TestRegisterSurfacesStorageErrors(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.User{}))
	svc := services.NewAccountService(repositories.NewUserRepository(db))

	// A failing lookup must not read as "no duplicate" and fall through
	// to the insert.
	err := svc.Register(testUser("u1", "9876543210", "alice@example.com"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrMobileRegistered)
	assert.NotErrorIs(t, err, services.ErrEmailRegistered)
}

func TestAuthenticateFailures(t *testing.T) {
	svc := newAccountService(t)

	require.NoError(t, svc.Register(testUser("u1", "9876543210", "alice@example.com")))

	_, err := svc.Authenticate("", "Passw0rd!")
	assert.ErrorIs(t, err, services.ErrMissingCredentials)

	_, err = svc.Authenticate("alice@example.com", "")
	assert.ErrorIs(t, err, services.ErrMissingCredentials)

	_, err = svc.Authenticate("nobody@example.com", "Passw0rd!")
	assert.ErrorIs(t, err, services.ErrAccountNotFound)

	_, err = svc.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrWrongPassword)
}

func TestAuthenticateMatchesEmailCaseInsensitively(t *testing.T) {
	svc := newAccountService(t)

	require.NoError(t, svc.Register(testUser("u1", "9876543210", "alice@example.com")))

	user, err := svc.Authenticate("Alice@EXAMPLE.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("John"))
	assert.True(t, IsValidName("O'Brien"))
	assert.True(t, IsValidName("Anne-Marie"))
	assert.False(t, IsValidName("J"))
	assert.False(t, IsValidName("John42"))
	assert.False(t, IsValidName("  "))
}

func TestIsValidMobileNumber(t *testing.T) {
	assert.True(t, IsValidMobileNumber("9876543210"))
	assert.False(t, IsValidMobileNumber("987654321"))
	assert.False(t, IsValidMobileNumber("98765432101"))
	assert.False(t, IsValidMobileNumber("98765abc10"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Passw0rd!"))
	assert.False(t, IsValidPassword("short1!"), "below eight characters")
	assert.False(t, IsValidPassword("password1!"), "no uppercase")
	assert.False(t, IsValidPassword("PASSWORD1!"), "no lowercase")
	assert.False(t, IsValidPassword("Password!!"), "no digit")
	assert.False(t, IsValidPassword("Password11"), "no special character")
}

func TestIsValidTimeString(t *testing.T) {
	assert.True(t, IsValidTimeString("14:30"))
	assert.True(t, IsValidTimeString("10:00 AM"))
	assert.True(t, IsValidTimeString("7:05PM"))
	assert.False(t, IsValidTimeString("half past ten"))
	assert.False(t, IsValidTimeString("14:30:00"))
}

func TestIsValidMaxPlayers(t *testing.T) {
	assert.True(t, IsValidMaxPlayers(1))
	assert.True(t, IsValidMaxPlayers(1000))
	assert.False(t, IsValidMaxPlayers(0))
	assert.False(t, IsValidMaxPlayers(1001))
}

// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s'-]*$`)
	timeRegex  = regexp.MustCompile(`^\d{1,2}:\d{2}( ?[AP]M)?$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidName checks a first or last name: 2-50 characters, letters,
// spaces, hyphens and apostrophes only.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 50 {
		return false
	}
	return nameRegex.MatchString(name)
}

// IsValidMobileNumber requires exactly 10 digits.
func IsValidMobileNumber(mobile string) bool {
	if len(mobile) != 10 {
		return false
	}
	for _, char := range mobile {
		if !unicode.IsDigit(char) {
			return false
		}
	}
	return true
}

// IsValidPassword requires 8-50 characters with at least one uppercase
// letter, one lowercase letter, one digit and one of !@#$%^&*.
func IsValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 50 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case strings.ContainsRune("!@#$%^&*", char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

func IsValidEventTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	return len(trimmed) >= 3 && len(trimmed) <= 50
}

func IsValidLocation(location string) bool {
	trimmed := strings.TrimSpace(location)
	return len(trimmed) >= 3 && len(trimmed) <= 100
}

func IsValidMaxPlayers(players int) bool {
	return players >= 1 && players <= 1000
}

// IsValidStartDate accepts a "2006-01-02" date that is today or later.
func IsValidStartDate(startDate string) bool {
	if !dateRegex.MatchString(startDate) {
		return false
	}

	parsed, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !parsed.Before(today)
}

// IsValidTimeString accepts "HH:MM" or "hh:mm AM/PM".
func IsValidTimeString(startTime string) bool {
	return timeRegex.MatchString(startTime)
}

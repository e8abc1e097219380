// Package validation holds input checks shared by the client CLI and
// the server handlers, so both sides reject the same garbage.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// UsernamePattern: latin letters, digits and underscores, 3-32 chars
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

// ColorPattern matches a #rrggbb hex color
var ColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32

	// MinPasswordLen is the minimum accepted password length
	MinPasswordLen = 8

	// MaxHabitNameLen keeps habit names list-friendly
	MaxHabitNameLen = 100

	// DateLayout is the wire format for completion dates
	DateLayout = "2006-01-02"
)

// ValidateUsername checks the account name format
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword checks minimal password requirements
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateHabitName checks a habit name after trimming whitespace
func ValidateHabitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if len(name) > MaxHabitNameLen {
		return fmt.Errorf("habit name must not exceed %d characters", MaxHabitNameLen)
	}

	return nil
}

// ValidateColor checks an optional #rrggbb color label
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}

	if !ColorPattern.MatchString(color) {
		return fmt.Errorf("color must be in #rrggbb format")
	}

	return nil
}

// ValidateDate checks a completion date in YYYY-MM-DD form
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	return nil
}

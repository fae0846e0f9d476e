package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateTaskText rejects blank and oversized task text. Callers trim
// before storing; whitespace-only input counts as empty.
func ValidateTaskText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.New("texto must not be empty")
	}
	if len(trimmed) > 255 {
		return errors.New("texto must be between 1 and 255 characters")
	}
	return nil
}

func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return errors.New("username must be between 3 and 50 characters")
	}
	if strings.ContainsAny(username, " \t\n") {
		return errors.New("username must not contain whitespace")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}

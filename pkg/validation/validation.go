package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt input limit, in bytes
	MaxNameLength     = 100
	MaxTitleLength    = 200
	MaxTextLength     = 2000
)

var (
	// Email regex pattern (basic validation)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return fmt.Errorf("email is required")
	}

	if len(email) > 255 {
		return fmt.Errorf("email is too long (max 255 characters)")
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidatePassword validates password length in bytes
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password is too long (max %d bytes)", MaxPasswordLength)
	}

	return nil
}

// ValidateName validates a display name
func ValidateName(name string) error {
	return ValidateText("name", name, MaxNameLength)
}

// ValidateTitle validates an activity title
func ValidateTitle(title string) error {
	return ValidateText("title", title, MaxTitleLength)
}

// ValidateText checks that a required free-text field is present and not too long
func ValidateText(field, value string, maxLength int) error {
	value = strings.TrimSpace(value)

	if value == "" {
		return fmt.Errorf("%s is required", field)
	}

	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s is too long (max %d characters)", field, maxLength)
	}

	return nil
}

// ValidateOptionalText checks the length of an optional free-text field
func ValidateOptionalText(field string, value *string) error {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > MaxTextLength {
		return fmt.Errorf("%s is too long (max %d characters)", field, MaxTextLength)
	}
	return nil
}

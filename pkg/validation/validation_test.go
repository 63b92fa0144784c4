package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "ana@example.com", false},
		{"padded", "  ana@example.com ", false},
		{"empty", "", true},
		{"no at", "ana.example.com", true},
		{"no tld", "ana@example", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", MaxPasswordLength)))
	assert.Error(t, ValidatePassword(strings.Repeat("x", MaxPasswordLength+1)))
	// 25 three-byte runes are 75 bytes
	assert.Error(t, ValidatePassword(strings.Repeat("€", 25)))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ana"))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("ñ", MaxNameLength+1)))
	assert.NoError(t, ValidateName(strings.Repeat("ñ", MaxNameLength)))
}

func TestValidateOptionalText(t *testing.T) {
	long := strings.Repeat("x", MaxTextLength+1)
	short := "fine"

	assert.NoError(t, ValidateOptionalText("note", nil))
	assert.NoError(t, ValidateOptionalText("note", &short))
	assert.Error(t, ValidateOptionalText("note", &long))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/domainkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.example.org", "a+tag@example.co"}
	for _, email := range valid {
		assert.True(t, validator.ValidEmail("email", email).Check(), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"   ",
		"plainaddress",
		"@example.com",
		"user@",
		"user@localhost",
		"user@.example.com",
		"user@example..com",
		"Bob <bob@example.com>",
	}
	for _, email := range invalid {
		assert.False(t, validator.ValidEmail("email", email).Check(), "expected %q to be invalid", email)
	}

	rule := validator.ValidEmail("email", "")
	assert.Equal(t, "must be a valid email address", rule.Error.Message)
	assert.Equal(t, "validation.email", rule.Error.Code)
}

func TestValidURL(t *testing.T) {
	assert.True(t, validator.ValidURL("site", "https://example.com").Check())
	assert.True(t, validator.ValidURL("site", "http://localhost:8080/path?q=1").Check())
	assert.False(t, validator.ValidURL("site", "").Check())
	assert.False(t, validator.ValidURL("site", "example.com").Check())
	assert.False(t, validator.ValidURL("site", "/relative/path").Check())
	assert.False(t, validator.ValidURL("site", "mailto:").Check())
	assert.Equal(t, "must be a valid URL", validator.ValidURL("site", "").Error.Message)
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+14155552671", "+44 20 7946 0958", "(415) 555-2671", "+81 90-1234-5678"}
	for _, phone := range valid {
		assert.True(t, validator.ValidPhone("phone", phone).Check(), "expected %q to be valid", phone)
	}

	invalid := []string{"", "12345", "+0123456789", "phone", "+1 415 555 2671 99999"}
	for _, phone := range invalid {
		assert.False(t, validator.ValidPhone("phone", phone).Check(), "expected %q to be invalid", phone)
	}

	assert.Equal(t, "must be a valid phone number", validator.ValidPhone("phone", "").Error.Message)
}

func TestRequiredPhone(t *testing.T) {
	assert.False(t, validator.RequiredPhone("phone", "").Check())
	assert.True(t, validator.RequiredPhone("phone", "1").Check())
	assert.Equal(t, "phone number is required", validator.RequiredPhone("phone", "").Error.Message)
}

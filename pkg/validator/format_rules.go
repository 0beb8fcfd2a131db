package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Reject display-name forms like "Bob <bob@example.com>"
			if addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "validation.email",
		},
	}
}

// ValidURL validates that a string is an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
			Code:    "validation.url",
		},
	}
}

// ValidPhone validates an international phone number (E.164 digits).
// Spaces, dashes, dots and parentheses are ignored.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(phoneSeparators.Replace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
			Code:    "validation.phone",
		},
	}
}

// RequiredPhone validates that a phone number was given at all.
func RequiredPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "phone number is required",
			Code:    "validation.phone_required",
		},
	}
}

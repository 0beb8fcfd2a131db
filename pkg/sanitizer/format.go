package sanitizer

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	dotRuns         = regexp.MustCompile(`\.+`)
	phoneFormatting = regexp.MustCompile(`[\s\-().]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// NormalizeEmail lower-cases and trims an address and collapses repeated
// dots in its local part. Input without exactly one "@" is only trimmed
// and lower-cased.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRuns.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// NormalizePhone strips formatting characters for consistent comparison.
// A leading '+' is kept so international numbers stay distinguishable.
func NormalizePhone(phone string) string {
	return phoneFormatting.ReplaceAllString(strings.TrimSpace(phone), "")
}

// NormalizeURL lower-cases the host and drops a bare trailing slash.
// Preserves the original on parse errors to avoid data loss.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Host == "" {
		return rawURL
	}

	parsedURL.Scheme = strings.ToLower(parsedURL.Scheme)
	parsedURL.Host = strings.ToLower(parsedURL.Host)

	// Remove trailing slash for consistent comparison
	if parsedURL.Path == "/" {
		parsedURL.Path = ""
	}

	return parsedURL.String()
}

// NormalizePostalCode creates consistent format for storage and comparison.
func NormalizePostalCode(postalCode string) string {
	code := strings.TrimSpace(postalCode)
	code = strings.ReplaceAll(code, " ", "")
	return strings.ToUpper(code)
}

// NormalizeWhitespace prevents layout issues from multiple spaces, tabs, and newlines.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

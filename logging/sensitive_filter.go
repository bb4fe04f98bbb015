package logging

import (
	"regexp"
	"strings"
)

// RedactedPlaceholder replaces sensitive values in log output.
const RedactedPlaceholder = "[REDACTED]"

// sensitivePatterns match key material embedded in free-form strings.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(encryption[_ -]?key\s*[:=]\s*\S+)`),
	regexp.MustCompile(`(?i)(\bkey\s*=\s*\S+)`),
	regexp.MustCompile(`(?i)(password\s*=\s*\S+)`),
	regexp.MustCompile(`(?i)(secret\s*=\s*\S+)`),
}

// sensitiveFieldNames are matched case-insensitively against whole field
// names and against their "_"-separated parts.
var sensitiveFieldNames = []string{
	"KEY",
	"ENCRYPTIONKEY",
	"PASSWORD",
	"SECRET",
	"TOKEN",
}

// RedactSensitiveData replaces key assignments such as "key=abcd" found in value.
//
//	RedactSensitiveData("bad input key=hunter22") // "bad input [REDACTED]"
func RedactSensitiveData(value string) string {
	if value == "" {
		return value
	}
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}

// IsSensitiveField reports whether a field name denotes key material.
//
//	IsSensitiveField("encryption_key") // true
//	IsSensitiveField("key_length")     // false
func IsSensitiveField(fieldName string) bool {
	upper := strings.ToUpper(fieldName)
	compact := strings.NewReplacer("_", "", "-", "", ".", "").Replace(upper)

	for _, name := range sensitiveFieldNames {
		if compact == name {
			return true
		}
	}

	// Only the trailing part decides, so "key_length" stays visible while
	// "encryption_key" and "default_key" are hidden.
	parts := strings.FieldsFunc(upper, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
	if len(parts) == 0 {
		return false
	}
	last := parts[len(parts)-1]
	for _, name := range sensitiveFieldNames {
		if last == name {
			return true
		}
	}
	return false
}

// ContainsSensitiveData reports whether value contains any sensitive pattern.
func ContainsSensitiveData(value string) bool {
	if value == "" {
		return false
	}
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

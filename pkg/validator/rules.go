package validator

import "regexp"

// emailPattern is the valid-email-address production of the HTML living
// standard, the same check a browser applies to input[type=email].
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// NotEmpty fails only for the empty string. Whitespace passes, matching the
// HTML required attribute on text inputs.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// ValidEmail fails for values a browser would refuse in an email input.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// IsEmail reports whether s is a single address accepted by input[type=email].
// Dotless domains and dots anywhere in the local part are allowed; display
// names and surrounding whitespace are not.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Package utilities contain utility code that use across the package
package utilities

// Response is the envelope every apply endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FormatPhone renders stored bare digits in the familiar 010-1234-5678
// grouping for display. Input that is too short is returned as-is.
func FormatPhone(digits string) string {
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 7:
		return digits[:3] + "-" + digits[3:]
	case len(digits) <= 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	default:
		return digits
	}
}

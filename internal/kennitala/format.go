package kennitala

import (
	"fmt"
	"strings"
)

// Format renders a kennitala in the canonical DDMMYY-NNNX form. The input
// may already contain separators; only its digits are considered. Returns
// an error wrapping ErrLength unless exactly 10 digits remain.
func Format(value string) (string, error) {
	digits := Normalize(value)
	if len(digits) != 10 {
		return "", fmt.Errorf("%w to format", ErrLength)
	}
	return formatDigits(digits), nil
}

// formatDigits inserts the canonical hyphen into a 10-character string.
func formatDigits(digits string) string {
	return digits[:6] + "-" + digits[6:]
}

// Mask renders a kennitala for safe display, exposing only the last
// visibleTail digits (0-10) and replacing everything before them with '*'.
// The hyphen keeps its canonical position, so Mask("120160-3389", 2)
// yields "******-**89" and visibleTail 0 yields "******-****".
func Mask(value string, visibleTail int) (string, error) {
	digits := Normalize(value)
	if len(digits) != 10 {
		return "", fmt.Errorf("%w to mask", ErrLength)
	}
	if visibleTail < 0 {
		visibleTail = 0
	}
	if visibleTail > 10 {
		visibleTail = 10
	}
	masked := strings.Repeat("*", 10-visibleTail) + digits[10-visibleTail:]
	return formatDigits(masked), nil
}

package kennitala

import (
	"fmt"
	"strings"
	"time"
)

// Error kinds returned by Parse, Format, Mask, and the generator entry
// points. Match with errors.Is.
var (
	// ErrLength means the normalized input is not exactly 10 digits.
	ErrLength = fmt.Errorf("kennitala must contain exactly 10 digits")

	// ErrDate means the century indicator or the encoded calendar date
	// does not resolve to a real date.
	ErrDate = fmt.Errorf("kennitala date or century indicator is invalid")

	// ErrChecksum means the check digit does not match under strict policy.
	ErrChecksum = fmt.Errorf("kennitala checksum is invalid")

	// ErrRange means a range-based generation call received start > end.
	ErrRange = fmt.Errorf("start date must not be after end date")

	// ErrYear means a generation date falls outside 1800-2099, the span
	// the century indicator can encode.
	ErrYear = fmt.Errorf("year out of supported range for kennitala")
)

// checksumWeights apply to digit positions 0-7.
var checksumWeights = [8]int{3, 2, 7, 6, 5, 4, 3, 2}

// Normalize returns only the decimal digits of value, in original order.
// It never fails; the result may have any length, including zero.
func Normalize(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComputeCheckDigit computes the Modulus 11 check digit over the first 8
// digits. ok is false when the computation yields 10: no valid check digit
// exists for that digit combination and such a kennitala is never issued.
func ComputeCheckDigit(first8 string) (digit int, ok bool) {
	sum := 0
	for i, w := range checksumWeights {
		sum += int(first8[i]-'0') * w
	}
	check := 11 - sum%11
	switch check {
	case 11:
		return 0, true
	case 10:
		return 0, false
	}
	return check, true
}

// checksumOK reports whether the check digit at position 8 matches the
// Modulus 11 computation over positions 0-7.
func checksumOK(digits string) bool {
	check, ok := ComputeCheckDigit(digits[:8])
	return ok && check == int(digits[8]-'0')
}

// centuryBase maps the century indicator digit to a base year.
func centuryBase(indicator int) (int, bool) {
	switch indicator {
	case 8:
		return 1800, true
	case 9:
		return 1900, true
	case 0:
		return 2000, true
	}
	return 0, false
}

// ResolveBirthDate decodes the birth or registration date from a normalized
// 10-digit kennitala, subtracting the company day offset when present.
// ok is false when the century indicator is unknown or the encoded
// components do not form a real calendar date.
func ResolveBirthDate(digits string) (time.Time, bool) {
	day := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if day >= 41 && day <= 71 {
		day -= 40
	}
	month := int(digits[2]-'0')*10 + int(digits[3]-'0')
	yearTwo := int(digits[4]-'0')*10 + int(digits[5]-'0')

	base, ok := centuryBase(int(digits[9] - '0'))
	if !ok {
		return time.Time{}, false
	}
	year := base + yearTwo

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2),
	// so the round-trip check below rejects impossible dates.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// IsValid reports whether value is a valid kennitala. It always checks
// normalized length, century indicator, and calendar date; the check digit
// is verified only when enforceChecksum is true. Newly issued IDs will stop
// satisfying the checksum once the Modulus 11 rule lapses, so relaxed
// callers pass false.
func IsValid(value string, enforceChecksum bool) bool {
	digits := Normalize(value)
	if len(digits) != 10 {
		return false
	}
	if _, ok := ResolveBirthDate(digits); !ok {
		return false
	}
	if enforceChecksum {
		return checksumOK(digits)
	}
	return true
}

// Parse returns structured information about a kennitala, or an error
// wrapping ErrLength, ErrDate, or ErrChecksum.
func Parse(value string, enforceChecksum bool) (Parsed, error) {
	digits := Normalize(value)
	if len(digits) != 10 {
		return Parsed{}, fmt.Errorf("%w: got %d", ErrLength, len(digits))
	}
	birth, ok := ResolveBirthDate(digits)
	if !ok {
		return Parsed{}, ErrDate
	}
	if enforceChecksum && !checksumOK(digits) {
		return Parsed{}, ErrChecksum
	}
	entity := EntityIndividual
	if isCompanyDigits(digits) {
		entity = EntityCompany
	}
	return Parsed{
		Digits:           digits,
		Formatted:        formatDigits(digits),
		BirthDate:        birth,
		CenturyIndicator: int(digits[9] - '0'),
		EntityType:       entity,
	}, nil
}

// BirthDate returns the resolved birth/registration date of a kennitala.
func BirthDate(value string, enforceChecksum bool) (time.Time, error) {
	parsed, err := Parse(value, enforceChecksum)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.BirthDate, nil
}

func isCompanyDigits(digits string) bool {
	if len(digits) != 10 {
		return false
	}
	day := int(digits[0]-'0')*10 + int(digits[1]-'0')
	return day >= 41 && day <= 71
}

// IsCompany reports whether the kennitala belongs to a company or other
// legal entity, based on the day+40 encoding. False on malformed input.
func IsCompany(value string) bool {
	return isCompanyDigits(Normalize(value))
}

// IsPersonal reports whether the kennitala belongs to an individual.
// False on malformed input.
func IsPersonal(value string) bool {
	digits := Normalize(value)
	return len(digits) == 10 && !isCompanyDigits(digits)
}

// IsDatasetID reports whether the kennitala carries the sequence marker
// ("14" or "15" at positions 6-7) used by the public Þjóðskrá gervigögn
// synthetic dataset. Advisory only: it checks neither date nor checksum.
func IsDatasetID(value string) bool {
	digits := Normalize(value)
	if len(digits) != 10 {
		return false
	}
	seq := digits[6:8]
	return seq == "14" || seq == "15"
}

// Package kennitala validates, parses, formats, masks, and generates
// Icelandic national identification numbers (kennitölur).
//
// A kennitala is 10 digits, conventionally written DDMMYY-NNNX:
//   - positions 0-5: day, month, two-digit year
//   - positions 6-7: sequence number
//   - position 8: Modulus 11 check digit
//   - position 9: century indicator (8=1800s, 9=1900s, 0=2000s)
//
// Individuals carry a real calendar day (01-31). Companies and other legal
// entities add 40 to the day field, so their day code is 41-71. The check
// digit rule is scheduled to lapse for newly issued IDs, which is why every
// validating operation takes an enforceChecksum policy flag.
package kennitala

import "time"

// EntityType distinguishes individuals from companies/legal entities.
type EntityType string

const (
	EntityIndividual EntityType = "individual"
	EntityCompany    EntityType = "company"
)

// Parsed holds the structured information of a successfully parsed kennitala.
type Parsed struct {
	// Digits is the normalized 10-digit form.
	Digits string `json:"digits"`

	// Formatted is the canonical DDMMYY-NNNX form.
	Formatted string `json:"formatted"`

	// BirthDate is the resolved birth (individual) or registration
	// (company) date, at midnight UTC.
	BirthDate time.Time `json:"birth_date"`

	// CenturyIndicator is the 10th digit (8, 9, or 0).
	CenturyIndicator int `json:"century_indicator"`

	// EntityType is derived from the day code (41-71 means company).
	EntityType EntityType `json:"entity_type"`
}

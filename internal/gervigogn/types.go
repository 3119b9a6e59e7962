// Package gervigogn loads the Þjóðskrá "gervigögn" synthetic identity
// dataset (Einstaklingar XML) and bulk-validates the kennitala of every
// record. The dataset exists for testing systems against realistic but
// fake identities; notably, one published variant carries kennitölur
// without valid check digits.
package gervigogn

import (
	"encoding/json"

	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
)

// Record maps a field name from one Einstaklingur element to its value.
// The value is nil when the source marks the element xsi:nil or its text
// is empty after trimming.
type Record map[string]*string

// Get returns the trimmed value of a field, or "" when absent or nil.
func (r Record) Get(field string) string {
	if v, ok := r[field]; ok && v != nil {
		return *v
	}
	return ""
}

// Validation holds the computed flags for one record's kennitala.
type Validation struct {
	// Relaxed is validity without checksum enforcement.
	Relaxed bool `json:"relaxed"`

	// Strict is validity with the Modulus 11 check digit enforced.
	Strict bool `json:"strict"`

	// IsDataset flags the synthetic-dataset sequence marker ("14"/"15").
	IsDataset bool `json:"is_dataset"`

	// EntityType is "individual" or "company", or null for malformed input.
	EntityType *kennitala.EntityType `json:"entity_type"`

	// BirthDate is the ISO-8601 date resolved under relaxed policy, or
	// null when unresolvable.
	BirthDate *string `json:"birth_date"`
}

// ValidatedRecord pairs the raw record fields with their validation flags.
type ValidatedRecord struct {
	Fields     Record
	Validation Validation
}

// MarshalJSON flattens the record fields into one object and attaches the
// flags under a "validation" key, matching the published JSON shape.
func (v ValidatedRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Fields)+1)
	for k, val := range v.Fields {
		if val == nil {
			out[k] = nil
		} else {
			out[k] = *val
		}
	}
	out["validation"] = v.Validation
	return json.Marshal(out)
}

package gervigogn

import (
	"strings"

	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
)

// KennitalaField is the record field carrying the national ID.
const KennitalaField = "Kennitala"

// ValidateRecords annotates every record with validation flags computed
// from its Kennitala field. Records without the field are annotated too;
// all their flags come out false/null.
func ValidateRecords(records []Record) []ValidatedRecord {
	out := make([]ValidatedRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, ValidatedRecord{
			Fields:     rec,
			Validation: validateOne(strings.TrimSpace(rec.Get(KennitalaField))),
		})
	}
	return out
}

func validateOne(kt string) Validation {
	v := Validation{
		Relaxed:   kennitala.IsValid(kt, false),
		Strict:    kennitala.IsValid(kt, true),
		IsDataset: kennitala.IsDatasetID(kt),
	}

	switch {
	case kennitala.IsCompany(kt):
		entity := kennitala.EntityCompany
		v.EntityType = &entity
	case kennitala.IsPersonal(kt):
		entity := kennitala.EntityIndividual
		v.EntityType = &entity
	}

	if v.Relaxed {
		if parsed, err := kennitala.Parse(kt, false); err == nil {
			iso := parsed.BirthDate.Format("2006-01-02")
			v.BirthDate = &iso
		}
	}
	return v
}

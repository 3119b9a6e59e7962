package gervigogn

import (
	"encoding/xml"
	"os"
	"regexp"
	"strings"

	apierrors "github.com/olgasafonova/iceland-registry-mcp-server/internal/errors"
)

// Published dataset files contain a duplicated self-closing tag on the
// SidastaIslLogh element ("<SidastaIslLogh .../>/>"). Repair it before
// decoding.
var duplicatedSelfClose = regexp.MustCompile(`(<SidastaIslLogh[^>]*/>)\s*/>`)

type xmlField struct {
	XMLName xml.Name
	Nil     string `xml:"nil,attr"`
	Text    string `xml:",chardata"`
}

type xmlPerson struct {
	Fields []xmlField `xml:",any"`
}

type xmlRoot struct {
	XMLName xml.Name
	Persons []xmlPerson `xml:"Einstaklingur"`
}

// LoadFile reads and parses an Einstaklingar XML file.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apierrors.NewDatasetError(path, "read failed", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, apierrors.NewDatasetError(path, "parse failed", err)
	}
	return records, nil
}

// Parse sanitizes and decodes Einstaklingar XML into one Record per
// Einstaklingur element.
func Parse(data []byte) ([]Record, error) {
	data = []byte(sanitize(string(data)))

	var root xmlRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.XMLName.Local != "Einstaklingar" {
		return nil, apierrors.NewDatasetError("", "unexpected root element "+root.XMLName.Local+", expected Einstaklingar", nil)
	}

	records := make([]Record, 0, len(root.Persons))
	for _, p := range root.Persons {
		rec := make(Record, len(p.Fields))
		for _, f := range p.Fields {
			rec[f.XMLName.Local] = fieldValue(f)
		}
		records = append(records, rec)
	}
	return records, nil
}

func sanitize(text string) string {
	return duplicatedSelfClose.ReplaceAllString(text, "${1}")
}

// fieldValue returns nil for xsi:nil elements and empty-after-trim text.
func fieldValue(f xmlField) *string {
	if strings.EqualFold(f.Nil, "true") {
		return nil
	}
	txt := strings.TrimSpace(f.Text)
	if txt == "" {
		return nil
	}
	return &txt
}

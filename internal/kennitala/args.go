package kennitala

// ValidateArgs contains parameters for kennitala validation.
type ValidateArgs struct {
	Kennitala string `json:"kennitala" jsonschema:"required" jsonschema_description:"Kennitala to validate, with or without separators (e.g. 120160-3389)"`
}

// ValidateResult reports validity under both checksum policies plus the
// advisory classification flags.
type ValidateResult struct {
	Digits     string `json:"digits,omitempty"`      // normalized 10-digit form, when well-formed
	Formatted  string `json:"formatted,omitempty"`   // DDMMYY-NNNX, when well-formed
	Strict     bool   `json:"strict"`                // valid with Modulus 11 check digit enforced
	Relaxed    bool   `json:"relaxed"`               // valid ignoring the check digit
	EntityType string `json:"entity_type,omitempty"` // individual or company, when well-formed
	IsDataset  bool   `json:"is_dataset"`            // carries the gervigögn sequence marker
	Message    string `json:"message,omitempty"`
}

// ParseArgs contains parameters for structured parsing.
type ParseArgs struct {
	Kennitala       string `json:"kennitala" jsonschema:"required" jsonschema_description:"Kennitala to parse"`
	EnforceChecksum *bool  `json:"enforce_checksum,omitempty" jsonschema_description:"Verify the Modulus 11 check digit (default: true)"`
}

// ParseResult is the structured form of a valid kennitala.
type ParseResult struct {
	Digits           string `json:"digits"`
	Formatted        string `json:"formatted"`
	BirthDate        string `json:"birth_date"` // ISO-8601 date
	CenturyIndicator int    `json:"century_indicator"`
	EntityType       string `json:"entity_type"`
}

// FormatArgs contains parameters for canonical formatting.
type FormatArgs struct {
	Kennitala string `json:"kennitala" jsonschema:"required" jsonschema_description:"Kennitala digits to format as DDMMYY-NNNX"`
}

// FormatResult holds the canonical form.
type FormatResult struct {
	Formatted string `json:"formatted"`
}

// MaskArgs contains parameters for display masking.
type MaskArgs struct {
	Kennitala   string `json:"kennitala" jsonschema:"required" jsonschema_description:"Kennitala to mask for safe display"`
	VisibleTail *int   `json:"visible_tail,omitempty" jsonschema_description:"Number of trailing digits to leave visible, 0-10 (default: 4)"`
}

// MaskResult holds the masked form.
type MaskResult struct {
	Masked string `json:"masked"`
}

// GenerateArgs contains parameters shared by the personal and company
// generation tools. Supply either a specific date, a start/end range, or
// neither (a default range is used).
type GenerateArgs struct {
	Date         string `json:"date,omitempty" jsonschema_description:"Specific birth/registration date as YYYY-MM-DD"`
	Start        string `json:"start,omitempty" jsonschema_description:"Inclusive range start as YYYY-MM-DD (requires end)"`
	End          string `json:"end,omitempty" jsonschema_description:"Inclusive range end as YYYY-MM-DD (requires start)"`
	SkipChecksum bool   `json:"skip_checksum,omitempty" jsonschema_description:"Emit a deliberately wrong check digit (structurally valid, strictly invalid)"`
	Raw          bool   `json:"raw,omitempty" jsonschema_description:"Return 10 bare digits instead of DDMMYY-NNNX"`
	Count        int    `json:"count,omitempty" jsonschema_description:"Number of IDs to generate, 1-100 (default: 1)"`
}

// GenerateResult holds generated kennitölur.
type GenerateResult struct {
	Kennitolur  []string `json:"kennitolur"`
	EntityType  string   `json:"entity_type"`
	StrictValid bool     `json:"strict_valid"` // false when skip_checksum was requested
}

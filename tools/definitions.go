package tools

// AllTools contains all tool specifications for the Iceland registry MCP
// server. Tool descriptions follow a structured format for optimal LLM
// tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// VALIDATION TOOLS
	// ==========================================================================
	{
		Name:     "iceland_validate_kennitala",
		Method:   "Validate",
		Title:    "Validate Kennitala",
		Category: "validate",
		Description: `Check whether an Icelandic kennitala (national ID) is valid.

USE WHEN: User asks "is this kennitala valid", "check this Icelandic ID", "verify 120160-3389".

NOT FOR: Extracting the birth date or entity type (use iceland_parse_kennitala). Not for bulk XML files (use iceland_validate_dataset).

PARAMETERS:
- kennitala: The ID to check, with or without separators (required)

RETURNS: Validity under the strict policy (Modulus 11 check digit enforced) and the relaxed policy (structure and date only), entity type, dataset-marker flag, and an explanatory message when invalid.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "iceland_parse_kennitala",
		Method:   "Parse",
		Title:    "Parse Kennitala",
		Category: "inspect",
		Description: `Decode a kennitala into its structured parts.

USE WHEN: User asks "when was this person born", "what does this kennitala encode", "is 450690-2019 a company".

NOT FOR: A simple valid/invalid answer (use iceland_validate_kennitala).

PARAMETERS:
- kennitala: The ID to decode (required)
- enforce_checksum: Reject IDs with a bad check digit (default true)

RETURNS: Normalized digits, formatted form, birth or registration date (ISO 8601), century indicator, and entity type (individual or company).`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "iceland_format_kennitala",
		Method:   "Format",
		Title:    "Format Kennitala",
		Category: "inspect",
		Description: `Render a kennitala in the canonical DDMMYY-NNNX form.

USE WHEN: User says "format this kennitala", "add the hyphen", "normalize 1201603389".

NOT FOR: Hiding digits for display (use iceland_mask_kennitala).

PARAMETERS:
- kennitala: The ID to format; separators and spaces are stripped (required)

RETURNS: The hyphenated ten-digit form. Fails if the input does not contain exactly 10 digits.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "iceland_mask_kennitala",
		Method:   "Mask",
		Title:    "Mask Kennitala",
		Category: "inspect",
		Description: `Partially hide a kennitala for safe display or logging.

USE WHEN: User says "mask this ID", "redact the kennitala", "show only the last digits".

NOT FOR: Formatting without hiding (use iceland_format_kennitala).

PARAMETERS:
- kennitala: The ID to mask (required)
- visible_tail: How many trailing digits stay visible, 0-10 (default 4)

RETURNS: The hyphenated form with leading digits replaced by asterisks, e.g. "******-3389".`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// GENERATION TOOLS
	// ==========================================================================
	{
		Name:     "iceland_generate_personal",
		Method:   "GeneratePersonal",
		Title:    "Generate Personal Kennitala",
		Category: "generate",
		Description: `Generate synthetic kennitölur for individuals (test data).

USE WHEN: User asks "make me a test kennitala", "generate an Icelandic personal ID", "I need fake IDs born in the 1980s".

NOT FOR: Company IDs (use iceland_generate_company). Never treat the output as belonging to a real person.

PARAMETERS:
- date: Exact birth date YYYY-MM-DD (optional)
- start, end: Birth date range, both required together (optional)
- count: How many to generate, 1-100 (default 1)
- skip_checksum: Emit a deliberately wrong check digit (default false)
- raw: Return bare digits without the hyphen (default false)

RETURNS: Generated kennitölur. Without skip_checksum every ID passes strict validation.`,
		ReadOnly:   true,
		Idempotent: false,
	},
	{
		Name:     "iceland_generate_company",
		Method:   "GenerateCompany",
		Title:    "Generate Company Kennitala",
		Category: "generate",
		Description: `Generate synthetic kennitölur for companies (day field offset by 40).

USE WHEN: User asks "generate a company kennitala", "I need a test Icelandic organization ID".

NOT FOR: Personal IDs (use iceland_generate_personal).

PARAMETERS:
- date: Exact registration date YYYY-MM-DD (optional)
- start, end: Registration date range, both required together (optional)
- count: How many to generate, 1-100 (default 1)
- skip_checksum: Emit a deliberately wrong check digit (default false)
- raw: Return bare digits without the hyphen (default false)

RETURNS: Generated company kennitölur with day codes in the 41-71 range.`,
		ReadOnly:   true,
		Idempotent: false,
	},

	// ==========================================================================
	// DATASET TOOLS
	// ==========================================================================
	{
		Name:     "iceland_validate_dataset",
		Method:   "ValidateDataset",
		Title:    "Validate Gervigögn Dataset",
		Category: "dataset",
		Description: `Bulk-validate a Þjóðskrá gervigögn (synthetic identity) XML file.

USE WHEN: User says "validate this Einstaklingar file", "check the gervigögn dataset", "how many IDs in this XML pass".

NOT FOR: Single kennitala checks (use iceland_validate_kennitala).

PARAMETERS:
- path: Path to the Einstaklingar XML file (required)
- include_records: Return per-record fields and flags, not just the summary (default false)

RETURNS: Record count and how many pass relaxed/strict validation, how many are companies or carry the dataset sequence marker; optionally every record with its flags.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

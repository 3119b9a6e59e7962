package gervigogn

// ValidateDatasetArgs contains parameters for bulk dataset validation.
type ValidateDatasetArgs struct {
	Path           string `json:"path" jsonschema:"required" jsonschema_description:"Path to an Einstaklingar XML dataset file"`
	IncludeRecords bool   `json:"include_records,omitempty" jsonschema_description:"Include per-record fields and flags in the response (default: summary only)"`
}

// ValidateDatasetResult summarizes a validated dataset.
type ValidateDatasetResult struct {
	Records       int               `json:"records"`
	RelaxedValid  int               `json:"relaxed_valid"`
	StrictValid   int               `json:"strict_valid"`
	Companies     int               `json:"companies"`
	DatasetMarked int               `json:"dataset_marked"`
	Results       []ValidatedRecord `json:"results,omitempty"`
}

package models

// LayoutType classifies the structural layout of a worksheet. It is advisory
// metadata only and never gates extraction behavior.
type LayoutType string

const (
	// LayoutKeyValue marks sheets dominated by two-cell label/value rows.
	LayoutKeyValue LayoutType = "key_value"
	// LayoutTable marks sheets dominated by multi-column rows under a header.
	LayoutTable LayoutType = "table"
	// LayoutMixed marks sheets with no dominant structure.
	LayoutMixed LayoutType = "mixed"
)

// ParameterLocation is one candidate extraction of a canonical parameter.
// Many may exist per parameter before deduplication; values are never
// mutated after creation.
type ParameterLocation struct {
	// Parameter is the canonical parameter name (e.g. "nitrogen").
	Parameter string `json:"parameter"`
	// Value is the extracted numeric value.
	Value float64 `json:"value"`
	// CellRef is the A1-notation source cell, or a placeholder when the
	// value was recovered from flattened text.
	CellRef string `json:"cell_ref"`
	// Confidence is the heuristic certainty score (0-100).
	Confidence int `json:"confidence"`
}

// ExtractionResult is the terminal output of one extraction pass.
type ExtractionResult struct {
	// Values maps each canonical parameter to its winning value. At most
	// one entry exists per parameter.
	Values map[string]float64 `json:"values"`
	// CellRefs maps each extracted parameter to its source cell. The key
	// set is identical to Values.
	CellRefs map[string]string `json:"cell_refs"`
	// Confidence is the overall extraction confidence (0-95).
	Confidence int `json:"confidence"`
	// SheetNames lists every sheet name in the source workbook.
	SheetNames []string `json:"sheet_names"`
	// ExtractedFrom is the name of the analyzed worksheet.
	ExtractedFrom string `json:"extracted_from"`
	// Layout is the independently classified sheet layout.
	Layout LayoutType `json:"layout"`
}

package logger

// Standard field names for consistent structured logging across chronoid.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Catalog and formats
	FieldFormat   = "format"
	FieldCategory = "category"
	FieldCatalog  = "catalog"
	FieldPattern  = "pattern"

	// Analysis
	FieldPairs    = "pairs"
	FieldClasses  = "classes"
	FieldRelation = "relation"
	FieldWorkers  = "workers"

	// Classification
	FieldInput      = "input"
	FieldStatus     = "status"
	FieldCandidates = "candidates"
	FieldWinners    = "winners"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"
)

package ir

// Version constants for the report and its input formats.
const (
	// Version is the covreport release.
	Version = "0.1.0"

	// ObjectRecordSize is the size in bytes of one compiled object template.
	ObjectRecordSize = 318

	// ActionRecordSize is the size in bytes of one compiled object action.
	ActionRecordSize = 48
)

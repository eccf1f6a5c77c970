package dtos

// RosterRow is one extracted data row of an uploaded roster spreadsheet.
// Line is the 1-based worksheet row number (data starts at line 2).
type RosterRow struct {
	Line      int
	FirstName string
	LastName  string
	Email     string
	IsMinor   bool
}

type RowOutcomeKind string

const (
	RowOutcomeAccepted              RowOutcomeKind = "accepted"
	RowOutcomeSkippedBlankName      RowOutcomeKind = "skippedBlankName"
	RowOutcomeSkippedDuplicate      RowOutcomeKind = "skippedDuplicate"
	RowOutcomeSkippedPersistFailure RowOutcomeKind = "skippedPersistFailure"
)

type RowOutcome struct {
	Line int            `json:"line"`
	Kind RowOutcomeKind `json:"kind"`
}

// BulkUploadResult is the internal per-roster processing result. Skipped rows
// are not surfaced to API clients, only counted out of Accepted.
type BulkUploadResult struct {
	Accepted int
	Outcomes []RowOutcome
}

type BulkUploadResponse struct {
	Message  string `json:"message"`
	Accepted int    `json:"accepted"`
}

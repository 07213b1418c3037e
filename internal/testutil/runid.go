package testutil

// FixedRunID generates the same run id every time.
//
// This keeps log output from the CLI deterministic in tests.
type FixedRunID struct {
	id string
}

// NewFixedRunID creates a generator for id.
//
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed run id.
//
// Implements cli.RunIDGenerator.
func (g *FixedRunID) Generate() string {
	return g.id
}

package ir

// Class is the coverage classification of one entity in one bucket.
type Class int

const (
	Unreachable Class = iota
	Uncovered
	Covered
)

// Classify applies the strict priority covered > uncovered > unreachable.
// Coverage does not require reachability: an index observed in a session
// is covered even if the manifest never listed it.
func Classify(i int, covered, reachable IndexSet) Class {
	switch {
	case covered.Has(i):
		return Covered
	case reachable.Has(i):
		return Uncovered
	default:
		return Unreachable
	}
}

// String returns the style class name used in the report.
func (c Class) String() string {
	switch c {
	case Covered:
		return "covered"
	case Uncovered:
		return "uncovered"
	default:
		return "unreachable"
	}
}

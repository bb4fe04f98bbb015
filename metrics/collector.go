package metrics

// Collector is implemented by anything that accepts transform records.
// Implementations must be safe for concurrent use.
type Collector interface {
	// Record stores a completed operation.
	Record(rec OperationRecord)

	// Report returns the aggregated performance report.
	Report() Report

	// Recent returns up to limit records, oldest first.
	Recent(limit int) []OperationRecord

	// Reset discards all recorded data.
	Reset()
}

// Nop discards everything it is given.
type Nop struct{}

func (Nop) Record(OperationRecord)       {}
func (Nop) Report() Report               { return emptyReport() }
func (Nop) Recent(int) []OperationRecord { return []OperationRecord{} }
func (Nop) Reset()                       {}

var (
	_ Collector = (*Store)(nil)
	_ Collector = Nop{}
)

package swiftamr

import "errors"

// Sentinel errors surfaced by this package. Wrap with fmt.Errorf("...: %w",
// err) at each layer that adds context; check with errors.Is at the caller.
var (
	// ErrEmptyInput is returned when a FASTA or FASTQ buffer has zero length.
	ErrEmptyInput = errors.New("swiftamr: empty input")

	// ErrNoRecords is returned when a FASTA buffer contains no '>' records,
	// or a FASTQ buffer contains no '@' records.
	ErrNoRecords = errors.New("swiftamr: no records found")

	// ErrSequenceTooLong is returned when a gene sequence exceeds
	// MaxSequenceLength. Sequences are rejected rather than silently
	// truncated (spec.md §4.3's explicit reject alternative).
	ErrSequenceTooLong = errors.New("swiftamr: sequence exceeds maximum length")

	// ErrNoIndex is returned by Engine.Align when no index has been built
	// yet (PreconditionViolated).
	ErrNoIndex = errors.New("swiftamr: no index loaded")

	// ErrGeneCapacity is returned when the gene table already holds
	// MaxUint32 genes, the point at which a new gene id can no longer be
	// represented.
	ErrGeneCapacity = errors.New("swiftamr: gene table capacity exceeded")
)

package swiftamr

import "math"

// KmerSize is the fixed k-mer window length. All k-mer operations in this
// package assume exactly this many bases.
const KmerSize = 16

// MaxGeneName mirrors the source's fixed name buffer size, including the
// slot the C string reserves for its NUL terminator. Only MaxGeneName-1
// bytes of a FASTA header name or FASTQ read name are ever retained;
// anything past that is truncated.
const MaxGeneName = 256

// MaxSequenceLength is the ceiling on a single gene sequence. Gene
// sequences over this length are rejected rather than silently truncated;
// FASTQ read sequences are not checked against it.
const MaxSequenceLength = 100 * 1024 * 1024

// HashTableSize is the number of buckets in the k-mer hash table.
const HashTableSize = 1 << 24

// KmerCode is a canonical numeric encoding of a KmerSize-base DNA window:
// A=0, C=1, G=2, T=3, packed big-endian two bits per base. It fits in 32
// bits because 2*KmerSize == 32.
type KmerCode uint32

// invalidKmer is the sentinel returned when a window cannot be encoded.
const invalidKmer KmerCode = math.MaxUint32

func baseCode(b byte) (KmerCode, bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}

// isValidKmerWindow reports whether every byte in seq[offset:offset+KmerSize]
// is one of A, C, G, T (case-insensitive). It does not bounds-check; callers
// must ensure offset+KmerSize <= len(seq).
func isValidKmerWindow(seq []byte, offset int) bool {
	for i := 0; i < KmerSize; i++ {
		if _, ok := baseCode(seq[offset+i]); !ok {
			return false
		}
	}
	return true
}

// encodeKmer packs seq[offset:offset+KmerSize] into a KmerCode. It returns
// (invalidKmer, false) if any base in the window is not one of A, C, G, T.
// Callers must ensure offset+KmerSize <= len(seq).
func encodeKmer(seq []byte, offset int) (KmerCode, bool) {
	var code KmerCode
	for i := 0; i < KmerSize; i++ {
		bc, ok := baseCode(seq[offset+i])
		if !ok {
			return invalidKmer, false
		}
		code = (code << 2) | bc
	}
	return code, true
}

// decodeKmer reverses encodeKmer, returning the uppercase KmerSize-base
// string the code represents. It is used by tests to verify the codec's
// round-trip property and is otherwise not on any hot path.
func decodeKmer(code KmerCode) string {
	const bases = "ACGT"
	buf := make([]byte, KmerSize)
	for i := KmerSize - 1; i >= 0; i-- {
		buf[i] = bases[code&0x3]
		code >>= 2
	}
	return string(buf)
}

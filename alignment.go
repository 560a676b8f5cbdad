package swiftamr

import (
	"bytes"
	"fmt"
	"math"
)

// NoHitGeneID is the sentinel BestGeneID value for a ReadAlignment that
// matched no gene (invariant I6).
const NoHitGeneID uint32 = math.MaxUint32

// ReadAlignment is the result of aligning one read against an Index. The
// caller owns the batch it appears in; ReadName is owned exclusively by
// this value.
type ReadAlignment struct {
	ReadName     string
	BestGeneID   uint32 // NoHitGeneID if the read matched nothing
	Score        uint32
	Coverage     float64
	Identity     float64
	KmersScanned uint32
}

// NoHit reports whether this alignment has no matching gene.
func (a *ReadAlignment) NoHit() bool { return a.BestGeneID == NoHitGeneID }

// AlignmentsToTSV formats alignments as the reference TSV report: one
// header row, then one row per alignment with gene names resolved from
// index, No_hit for the sentinel, and coverage/identity at four fractional
// digits. This is the "thin external formatter" spec.md's Non-goals name
// explicitly — it is never called from the core alignment path.
func AlignmentsToTSV(alignments []ReadAlignment, index *Index) []byte {
	var buf bytes.Buffer
	buf.WriteString("read_name\tgene\tscore\tcoverage\tidentity\n")
	for _, a := range alignments {
		geneName := "No_hit"
		if !a.NoHit() {
			if gene, ok := index.Gene(a.BestGeneID); ok {
				geneName = gene.Name()
			}
		}
		fmt.Fprintf(&buf, "%s\t%s\t%d\t%.4f\t%.4f\n", a.ReadName, geneName, a.Score, a.Coverage, a.Identity)
	}
	return buf.Bytes()
}

package swiftamr

import (
	"strings"
	"testing"
)

func TestAlignmentsToTSVFormat(t *testing.T) {
	ix := NewIndex()
	ix.AddGene("geneA", "ACGTACGTACGTACGT")

	alignments := []ReadAlignment{
		{ReadName: "read1", BestGeneID: 0, Score: 3, Coverage: 0.5, Identity: 0.75},
		{ReadName: "read2", BestGeneID: NoHitGeneID},
	}

	tsv := string(AlignmentsToTSV(alignments, ix))
	lines := strings.Split(strings.TrimRight(tsv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "read_name\tgene\tscore\tcoverage\tidentity" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "read1\tgeneA\t3\t0.5000\t0.7500" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "read2\tNo_hit\t0\t0.0000\t0.0000" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestReadAlignmentNoHit(t *testing.T) {
	hit := ReadAlignment{BestGeneID: 0}
	if hit.NoHit() {
		t.Error("gene id 0 should not be treated as no-hit")
	}
	miss := ReadAlignment{BestGeneID: NoHitGeneID}
	if !miss.NoHit() {
		t.Error("NoHitGeneID should be treated as no-hit")
	}
}

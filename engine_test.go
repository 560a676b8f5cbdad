package swiftamr

import "testing"

func TestEngineBuildAndAlign(t *testing.T) {
	e := NewEngine()

	fasta := []byte(">geneA\nACGTACGTACGTACGT\n")
	n, err := e.Build(fasta)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 1 {
		t.Fatalf("genesAdded = %d, want 1", n)
	}

	fastq := []byte("@read1\nACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIII\n")
	results, err := e.Align(fastq)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if len(results) != 1 || results[0].NoHit() {
		t.Fatalf("results = %+v", results)
	}
}

func TestEngineAlignWithoutBuildReturnsErrNoIndex(t *testing.T) {
	e := NewEngine()
	if _, err := e.Align([]byte("@read1\nACGT\n+\nIIII\n")); err != ErrNoIndex {
		t.Fatalf("err = %v, want ErrNoIndex", err)
	}
}

func TestEngineCleanupDropsIndex(t *testing.T) {
	e := NewEngine()
	e.Build([]byte(">geneA\nACGTACGTACGTACGT\n"))
	if e.Index() == nil {
		t.Fatal("expected an index after Build")
	}
	e.Cleanup()
	if e.Index() != nil {
		t.Error("expected no index after Cleanup")
	}
	if _, err := e.Align([]byte("@read1\nACGT\n+\nIIII\n")); err != ErrNoIndex {
		t.Errorf("err = %v, want ErrNoIndex", err)
	}
}

func TestEngineStatsBeforeAndAfterBuild(t *testing.T) {
	e := NewEngine()
	if got := e.Stats(); got != "No index loaded" {
		t.Errorf("Stats() before build = %q", got)
	}
	e.Build([]byte(">geneA\nACGTACGTACGTACGT\n"))
	if got := e.Stats(); got == "No index loaded" {
		t.Error("Stats() after build should not report no index")
	}
}

func TestEngineRebuildReplacesIndex(t *testing.T) {
	e := NewEngine()
	e.Build([]byte(">geneA\nACGTACGTACGTACGT\n"))
	first := e.Index()

	e.Build([]byte(">geneB\nTTTTTTTTTTTTTTTT\n"))
	second := e.Index()

	if first == second {
		t.Error("Build should atomically replace the current index")
	}
	if second.NumGenes() != 1 {
		t.Errorf("NumGenes() = %d, want 1", second.NumGenes())
	}
	gene, ok := second.Gene(0)
	if !ok || gene.Name() != "geneB" {
		t.Errorf("expected only geneB in the rebuilt index, got %+v", gene)
	}
}

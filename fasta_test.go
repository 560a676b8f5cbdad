package swiftamr

import "testing"

func TestBuildFromFASTASingleRecord(t *testing.T) {
	data := []byte(">blaTEM-1 beta-lactamase resistance gene\nACGTACGTACGTACGT\n")
	ix := NewIndex()
	n, err := ix.BuildFromFASTA(data)
	if err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	if n != 1 {
		t.Fatalf("genesAdded = %d, want 1", n)
	}
	gene, ok := ix.Gene(0)
	if !ok {
		t.Fatal("gene 0 not found")
	}
	if gene.Name() != "blaTEM-1" {
		t.Errorf("Name() = %q", gene.Name())
	}
	if gene.Description() != "beta-lactamase resistance gene" {
		t.Errorf("Description() = %q", gene.Description())
	}
	if string(gene.Sequence()) != "ACGTACGTACGTACGT" {
		t.Errorf("Sequence() = %q", gene.Sequence())
	}
}

func TestBuildFromFASTAMultipleRecords(t *testing.T) {
	data := []byte(">geneA\nACGT\n>geneB desc\nTTTT\n")
	ix := NewIndex()
	n, err := ix.BuildFromFASTA(data)
	if err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	if n != 2 {
		t.Fatalf("genesAdded = %d, want 2", n)
	}
	geneA, _ := ix.Gene(0)
	geneB, _ := ix.Gene(1)
	if geneA.Name() != "geneA" || geneB.Name() != "geneB" {
		t.Errorf("names = %q, %q", geneA.Name(), geneB.Name())
	}
}

func TestBuildFromFASTAEmptyInput(t *testing.T) {
	ix := NewIndex()
	if _, err := ix.BuildFromFASTA(nil); err != ErrEmptyInput {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestBuildFromFASTANoRecords(t *testing.T) {
	ix := NewIndex()
	if _, err := ix.BuildFromFASTA([]byte("not a fasta file\nno headers here\n")); err != ErrNoRecords {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}
}

func TestBuildFromFASTAEmptySequenceNotCounted(t *testing.T) {
	data := []byte(">emptyGene\n>geneB\nACGT\n")
	ix := NewIndex()
	n, err := ix.BuildFromFASTA(data)
	if err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	if n != 1 {
		t.Fatalf("genesAdded = %d, want 1", n)
	}
	gene, ok := ix.Gene(0)
	if !ok || gene.Name() != "geneB" {
		t.Errorf("Gene(0) = %+v", gene)
	}
}

func TestBuildFromFASTAHeaderKeepsEmbeddedAngleBracket(t *testing.T) {
	data := []byte(">geneA weird>header\nACGT\n")
	ix := NewIndex()
	n, err := ix.BuildFromFASTA(data)
	if err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	if n != 1 {
		t.Fatalf("genesAdded = %d, want 1", n)
	}
	gene, _ := ix.Gene(0)
	if gene.Name() != "geneA" {
		t.Errorf("Name() = %q", gene.Name())
	}
	if gene.Description() != "weird>header" {
		t.Errorf("Description() = %q", gene.Description())
	}
}

func TestBuildFromFASTAMidLineAngleBracketDoesNotStartRecord(t *testing.T) {
	// A '>' that does not follow a newline is part of the sequence line, not
	// a new record start.
	data := []byte(">geneA\nACGT>weird\n>geneB\nTTTT\n")
	ix := NewIndex()
	n, err := ix.BuildFromFASTA(data)
	if err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	if n != 2 {
		t.Fatalf("genesAdded = %d, want 2", n)
	}
	geneA, _ := ix.Gene(0)
	if string(geneA.Sequence()) != "ACGT>WEIRD" {
		t.Errorf("Sequence() = %q", geneA.Sequence())
	}
	geneB, _ := ix.Gene(1)
	if geneB.Name() != "geneB" {
		t.Errorf("Name() = %q", geneB.Name())
	}
}

func TestBuildFromFASTAStripsWhitespaceFromSequence(t *testing.T) {
	data := []byte(">geneA\nACGT\r\nACGT\n\nACGT\n")
	ix := NewIndex()
	if _, err := ix.BuildFromFASTA(data); err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	gene, _ := ix.Gene(0)
	if string(gene.Sequence()) != "ACGTACGTACGT" {
		t.Errorf("Sequence() = %q", gene.Sequence())
	}
}

func TestBuildFromFASTAHeaderTruncation(t *testing.T) {
	longHeader := make([]byte, MaxGeneName+50)
	for i := range longHeader {
		longHeader[i] = 'x'
	}
	data := append([]byte(">"), longHeader...)
	data = append(data, "\nACGT\n"...)

	ix := NewIndex()
	if _, err := ix.BuildFromFASTA(data); err != nil {
		t.Fatalf("BuildFromFASTA: %v", err)
	}
	gene, ok := ix.Gene(0)
	if !ok {
		t.Fatal("gene 0 not found")
	}
	if len(gene.Name()) != MaxGeneName-1 {
		t.Fatalf("len(Name()) = %d, want %d", len(gene.Name()), MaxGeneName-1)
	}
}

func TestSplitHeaderNoWhitespace(t *testing.T) {
	name, desc := splitHeader("geneOnly")
	if name != "geneOnly" || desc != "" {
		t.Errorf("splitHeader = %q, %q", name, desc)
	}
}

func TestSplitHeaderWithDescription(t *testing.T) {
	name, desc := splitHeader("geneA   some description here")
	if name != "geneA" || desc != "some description here" {
		t.Errorf("splitHeader = %q, %q", name, desc)
	}
}

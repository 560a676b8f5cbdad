/*
Package swiftamr provides an in-memory k-mer alignment engine for detecting
antimicrobial-resistance (AMR) genes in short-read sequencing data.

Given a reference database of AMR gene sequences and a batch of sequencing
reads, swiftamr assigns each read to at most one database gene using a
winner-takes-all scoring rule over fixed-length k-mer matches, and reports
per-read score, coverage, and identity.

# Overview

swiftamr is built around a single long-lived Index: a gene table plus a
k-mer hash table. Building the Index from a FASTA reference and aligning
reads from a FASTQ batch are the two core operations; everything else
(gene description search, gene-length range queries, TSV formatting) is a
thin convenience layered on top of the same Index.

# Quick Start

Build an index from a FASTA reference and align a FASTQ batch of reads:

	package main

	import (
	    "fmt"
	    "log"
	    "os"

	    "github.com/wizenheimer/swiftamr"
	)

	func main() {
	    fasta, err := os.ReadFile("card.fasta")
	    if err != nil {
	        log.Fatal(err)
	    }

	    index := swiftamr.NewIndex()
	    genes, err := index.BuildFromFASTA(fasta)
	    if err != nil {
	        log.Fatal(err)
	    }
	    fmt.Printf("indexed %d genes\n", genes)

	    fastq, err := os.ReadFile("reads.fastq")
	    if err != nil {
	        log.Fatal(err)
	    }

	    aligner := swiftamr.NewAligner(index)
	    alignments, err := aligner.AlignFASTQ(fastq)
	    if err != nil {
	        log.Fatal(err)
	    }

	    os.Stdout.Write(swiftamr.AlignmentsToTSV(alignments, index))
	}

# K-mer Index

K=16 nucleotide windows are packed into a 32-bit KmerCode (2 bits per base)
and inserted into a chained hash table of 2^24 buckets. A k-mer is valid
only if every base in the window is one of A, C, G, T (case-folded);
anything else, including IUPAC ambiguity codes, invalidates the window and
it is skipped rather than indexed.

	index := swiftamr.NewIndex()
	geneID, err := index.AddGene("mecA", "ATG...")

# Read Alignment

For each read, every valid k-mer window is looked up in the index. Every
(gene, position) hit increments that gene's score and marks that position
covered. The gene with the highest score wins (ties broken by the smallest
gene id); coverage is the fraction of the winning gene's positions that were
hit, and identity is the score divided by the theoretical maximum number of
alignable k-mers.

	aligner := swiftamr.NewAligner(index)
	alignments, err := aligner.AlignFASTQ(fastqBytes)
	for _, a := range alignments {
	    fmt.Println(a.ReadName, a.Score, a.Coverage, a.Identity)
	}

# Gene Description Search

FASTA headers in real AMR databases (CARD, MEGARes, ResFinder) carry
free-text annotations after the accession. swiftamr indexes that text with
BM25 so a loaded database can be searched by description:

	results, err := index.SearchGenes("beta-lactamase", 10)

# Gene Length Index

Gene lengths are indexed with a bit-sliced index (BSI) for range queries,
useful for filtering out fragments too short to be reliably discriminated
by K=16 k-mers:

	shortGenes, err := index.GenesShorterThan(200)

# Engine: Scoped Replacement for a Single Live Index

Engine exists for callers that want the "one live index" shape described by
swiftamr's external interface (a handle that is atomically replaced by the
next Build call) instead of managing an *Index directly:

	engine := swiftamr.NewEngine()
	if _, err := engine.Build(fastaBytes); err != nil {
	    log.Fatal(err)
	}
	alignments, err := engine.Align(fastqBytes)

# TSV Reports

AlignmentsToTSV formats a batch of ReadAlignment values as the reference TSV
report (read_name, gene, score, coverage, identity), matching No_hit for
reads with no matching gene. It is a thin, separate concern from the engine
core — nothing in the core alignment path calls it.

# Concurrency

Index and Aligner are built once and then read many times by a single
goroutine at a time; there is no internal locking. Engine synchronizes only
the pointer swap between successive Build calls, using atomic.Pointer; it
does not defend against a Build racing an Align on the same Engine value.

# License

MIT License - Copyright (c) 2025 wizenheimer
*/
package swiftamr

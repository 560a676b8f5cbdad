// Command swiftamr builds a k-mer index from a FASTA gene database, aligns
// FASTQ reads against it, and searches gene descriptions.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/wizenheimer/swiftamr"
)

const version = "1.0.0"

func buildCommand() *cobra.Command {
	var (
		fastaFile string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a k-mer index from a FASTA gene database",
		Long:  "Build an in-memory k-mer index from a FASTA gene database and report the number of genes indexed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(fastaFile, output)
		},
	}
	cmd.Flags().StringVarP(&fastaFile, "fasta", "f", "", "Input FASTA gene database")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output TSV of gene name/length pairs (optional)")
	cmd.MarkFlagRequired("fasta")
	return cmd
}

func runBuild(fastaFile, output string) error {
	log.Printf("building index from %s...", fastaFile)

	data, err := readWithProgress(fastaFile)
	if err != nil {
		return fmt.Errorf("failed to read fasta: %w", err)
	}

	engine := swiftamr.NewEngine()
	numGenes, err := engine.Build(data)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	log.Printf("indexed %d genes", numGenes)
	log.Println(engine.Stats())

	if output == "" {
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	index := engine.Index()
	fmt.Fprintln(f, "gene\tlength")
	for id := 0; id < index.NumGenes(); id++ {
		gene, ok := index.Gene(uint32(id))
		if !ok {
			continue
		}
		fmt.Fprintf(f, "%s\t%d\n", gene.Name(), gene.Length())
	}
	return nil
}

func alignCommand() *cobra.Command {
	var (
		fastaFile string
		fastqFile string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align FASTQ reads against a FASTA gene database",
		Long:  "Build a k-mer index from a FASTA gene database, align every FASTQ read against it, and write a TSV report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(fastaFile, fastqFile, output)
		},
	}
	cmd.Flags().StringVarP(&fastaFile, "fasta", "f", "", "Input FASTA gene database")
	cmd.Flags().StringVarP(&fastqFile, "fastq", "q", "", "Input FASTQ reads")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output TSV alignment report")
	cmd.MarkFlagRequired("fasta")
	cmd.MarkFlagRequired("fastq")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runAlign(fastaFile, fastqFile, output string) error {
	fastaData, err := readWithProgress(fastaFile)
	if err != nil {
		return fmt.Errorf("failed to read fasta: %w", err)
	}

	engine := swiftamr.NewEngine()
	numGenes, err := engine.Build(fastaData)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	log.Printf("indexed %d genes", numGenes)

	fastqData, err := readWithProgress(fastqFile)
	if err != nil {
		return fmt.Errorf("failed to read fastq: %w", err)
	}

	alignments, err := engine.Align(fastqData)
	if err != nil {
		return fmt.Errorf("failed to align reads: %w", err)
	}
	log.Printf("aligned %d reads", len(alignments))

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(swiftamr.AlignmentsToTSV(alignments, engine.Index())); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func searchCommand() *cobra.Command {
	var (
		fastaFile string
		query     string
		topK      int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search gene descriptions with BM25 ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(fastaFile, query, topK)
		},
	}
	cmd.Flags().StringVarP(&fastaFile, "fasta", "f", "", "Input FASTA gene database")
	cmd.Flags().StringVarP(&query, "query", "Q", "", "Search query")
	cmd.Flags().IntVarP(&topK, "top", "k", 10, "Number of results to return")
	cmd.MarkFlagRequired("fasta")
	cmd.MarkFlagRequired("query")
	return cmd
}

func runSearch(fastaFile, query string, topK int) error {
	data, err := readWithProgress(fastaFile)
	if err != nil {
		return fmt.Errorf("failed to read fasta: %w", err)
	}

	engine := swiftamr.NewEngine()
	if _, err := engine.Build(data); err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	results, err := engine.Index().SearchGenes(query, topK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Println("gene\tscore")
	for _, r := range results {
		gene, ok := engine.Index().Gene(r.GeneID)
		if !ok {
			continue
		}
		fmt.Printf("%s\t%.4f\n", gene.Name(), r.Score)
	}
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("swiftamr version %s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// readWithProgress reads path in full, driving a byte-count progress bar the
// way this stack's CLI reads its inputs.
func readWithProgress(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.Full.Start64(info.Size())
	defer bar.Finish()

	reader := bar.NewProxyReader(f)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "swiftamr",
		Short: "In-memory k-mer alignment engine for antimicrobial-resistance gene detection",
		Long: `swiftamr: k-mer based read alignment against an AMR gene database

Workflow:
  1. build   - index a FASTA gene database and report indexing stats
  2. align   - align FASTQ reads against a FASTA gene database, writing a TSV report
  3. search  - rank gene descriptions against a free-text query with BM25`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(buildCommand())
	rootCmd.AddCommand(alignCommand())
	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(versionCommand())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aria-lang/graphaligner-go/internal/dpalign"
	"github.com/aria-lang/graphaligner-go/pkg/graphaligner"
)

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	ref := fs.String("ref", "", "Flat reference sequence (mutually exclusive with -graph)")
	graphFile := fs.String("graph", "", "Path to a JSON graph reference (mutually exclusive with -ref)")
	query := fs.String("query", "", "Query sequence")
	local := fs.Bool("local", false, "Use greedy local-max graph traversal instead of exhaustive global-max")
	llocal := fs.Bool("llocal", false, "Treat the left edge as local")
	rlocal := fs.Bool("rlocal", false, "Treat the right edge as local")
	fs.Parse(args)

	if *query == "" || (*ref == "" && *graphFile == "") || (*ref != "" && *graphFile != "") {
		fmt.Fprintln(os.Stderr, "Error: -query and exactly one of -ref/-graph are required")
		fs.Usage()
		os.Exit(1)
	}

	q, err := graphaligner.NewSequence(*query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating query sequence: %v\n", err)
		os.Exit(1)
	}

	p := graphaligner.DefaultParams()
	p.LLocal = *llocal
	p.RLocal = *rlocal

	if *ref != "" {
		r, err := graphaligner.NewSequence(*ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating reference sequence: %v\n", err)
			os.Exit(1)
		}
		paddedRef, paddedQuery, score := graphaligner.Align(r, q, p)
		fmt.Printf("Score: %d\n%s\n%s\nCIGAR: %s\n", score, paddedRef.String(), paddedQuery.String(), dpalign.ToCIGAR(paddedRef, paddedQuery))
		return
	}

	data, err := os.ReadFile(*graphFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading graph file: %v\n", err)
		os.Exit(1)
	}
	graph, err := graphaligner.LoadGraph(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding graph: %v\n", err)
		os.Exit(1)
	}

	var result *graphaligner.Result
	var ok bool
	if *local {
		result, ok = graphaligner.AlignLocalMax(graph, q, p)
	} else {
		result, ok = graphaligner.AlignGlobalMax(graph, q, p)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no feasible path through graph")
		os.Exit(1)
	}

	fmt.Printf("Score: %d\nPath: %v\n%s\n%s\nCIGAR: %s\n", result.Score, result.Path, result.PaddedRef.String(), result.PaddedQuery.String(), dpalign.ToCIGAR(result.PaddedRef, result.PaddedQuery))
}

func batchCmd(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	graphFile := fs.String("graph", "", "Path to a JSON graph reference")
	fastaFile := fs.String("fasta", "", "Path to a FASTA or FASTQ file of queries (.fastq/.fq read as FASTQ)")
	local := fs.Bool("local", false, "Use greedy local-max graph traversal instead of exhaustive global-max")
	workers := fs.Int("workers", 0, "Number of concurrent alignments (0 = GOMAXPROCS)")
	fs.Parse(args)

	if *graphFile == "" || *fastaFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -graph and -fasta are required")
		fs.Usage()
		os.Exit(1)
	}

	graphData, err := os.ReadFile(*graphFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading graph file: %v\n", err)
		os.Exit(1)
	}
	graph, err := graphaligner.LoadGraph(graphData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding graph: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*fastaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening FASTA file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	readQueries := graphaligner.ReadQueryFASTA
	if strings.HasSuffix(*fastaFile, ".fastq") || strings.HasSuffix(*fastaFile, ".fq") {
		readQueries = graphaligner.ReadQueryFASTQ
	}

	records, err := readQueries(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading queries: %v\n", err)
		os.Exit(1)
	}

	queries := make([]graphaligner.Query, len(records))
	for i, rec := range records {
		queries[i] = graphaligner.Query{Name: rec.Name, Seq: rec.Seq}
	}

	strategy := graphaligner.GlobalMax
	if *local {
		strategy = graphaligner.LocalMax
	}

	results := graphaligner.RunBatch(graph, queries, strategy, graphaligner.DefaultParams(), *workers)
	for _, r := range results {
		if !r.Found {
			fmt.Printf("%s: no feasible path\n", r.Name)
			continue
		}
		fmt.Printf("%s: score=%d path=%v\n", r.Name, r.Query.Score, r.Query.Path)
	}

	summary := graphaligner.SummarizeBatch(results)
	fmt.Printf("\n%d aligned, mean score %.2f (min %d, max %d)\n",
		summary.Count, summary.MeanScore, summary.MinScore, summary.MaxScore)
}

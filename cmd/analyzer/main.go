package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/gateway"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/usecase"
)

func main() {
	bundlesStr := flag.String("input", "", "Comma-separated list of claim input bundle JSON files (required)")
	flag.Parse()

	if *bundlesStr == "" {
		fmt.Println("Error: the -input flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	bundlePaths := strings.Split(*bundlesStr, ",")

	reader := gateway.NewBundleReader()
	inputs, err := reader.ReadBundles(bundlePaths)
	if err != nil {
		log.Fatalf("Failed to read claim bundles: %v", err)
	}

	analyzer := usecase.NewAnalyzer()

	if len(inputs) == 1 {
		analysis, err := analyzer.Analyze(inputs[0])
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		printJSON(analysis)
		return
	}

	// Several bundles: independent claims, scored in parallel. A failed
	// claim is reported on stderr without blocking the others.
	failures := 0
	for _, result := range analyzer.AnalyzeBatch(context.Background(), inputs) {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "claim %s: %v\n", result.ClaimID, result.Err)
			failures++
			continue
		}
		printJSON(result.Analysis)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func printJSON(v any) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON output: %v", err)
	}
	fmt.Println(string(output))
}

// Command evals runs MCP tool selection evaluations for the kennitala
// tools against the deterministic keyword baseline.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals/testdata -suite all
//
// For actual LLM evaluation, implement evals.ToolSelector on top of your
// model harness and reuse the same suites.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/olgasafonova/iceland-registry-mcp-server/evals"
)

func main() {
	dir := flag.String("dir", "./evals/testdata", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to run: tool_selection, confusion_pairs, or all")
	verbose := flag.Bool("verbose", false, "Show every test result, not just failures")
	flag.Parse()

	fmt.Println("Iceland Registry MCP Server - Evaluation Framework")
	fmt.Println("==================================================")

	selector := evals.KeywordSelector{}
	failed := false

	switch *suite {
	case "tool_selection", "confusion_pairs", "all":
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}

	if *suite == "tool_selection" || *suite == "all" {
		ts, err := evals.LoadToolSelectionSuite(*dir + "/tool_selection.json")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tool selection suite: %v\n", err)
			os.Exit(1)
		}
		metrics, results := evals.EvaluateToolSelection(ts, selector)
		fmt.Print(evals.FormatMetrics(metrics, ts.Name))
		if *verbose {
			printResults(results)
		}
		failed = failed || metrics.FailedTests > 0
	}

	if *suite == "confusion_pairs" || *suite == "all" {
		cp, err := evals.LoadConfusionPairSuite(*dir + "/confusion_pairs.json")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading confusion pairs suite: %v\n", err)
			os.Exit(1)
		}
		metrics, results := evals.EvaluateConfusionPairs(cp, selector)
		fmt.Print(evals.FormatMetrics(metrics, cp.Name))
		if *verbose {
			printResults(results)
		}
		failed = failed || metrics.FailedTests > 0
	}

	if failed {
		os.Exit(1)
	}
}

func printResults(results []evals.Result) {
	fmt.Println("\nResults:")
	for _, r := range results {
		mark := "PASS"
		if !r.Passed {
			mark = "FAIL"
		}
		fmt.Printf("  [%s] %s: %s\n", mark, r.TestID, r.Input)
		if r.ActualTool != r.ExpectedTool {
			fmt.Printf("         expected %s, got %s\n", r.ExpectedTool, r.ActualTool)
		}
	}
}

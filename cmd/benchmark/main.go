// Benchmark harness for the kennitala core. Measures validation, parsing,
// generation, and masking throughput without any MCP transport overhead.
package main

import (
	"fmt"
	"time"

	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
)

const iterations = 1_000_000

func measureValidation() {
	fmt.Println("=== Validation Performance ===")
	fmt.Println()

	samples := []string{
		"1201603389",  // strict valid
		"120160-3389", // formatted
		"1201603399",  // bad check digit
		"3202962099",  // impossible date
	}

	for _, sample := range samples {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			kennitala.IsValid(sample, true)
		}
		elapsed := time.Since(start)
		fmt.Printf("   IsValid(%q): %v total, %v/op\n", sample, elapsed, elapsed/iterations)
	}
	fmt.Println()
}

func measureParsing() {
	fmt.Println("=== Parse Performance ===")
	fmt.Println()

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_, _ = kennitala.Parse("1201603389", true)
	}
	elapsed := time.Since(start)
	fmt.Printf("   Parse (strict):  %v total, %v/op\n", elapsed, elapsed/iterations)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		_, _ = kennitala.Parse("1201603399", false)
	}
	elapsed = time.Since(start)
	fmt.Printf("   Parse (relaxed): %v total, %v/op\n", elapsed, elapsed/iterations)
	fmt.Println()
}

func measureGeneration() {
	fmt.Println("=== Generation Performance ===")
	fmt.Println()

	gen := kennitala.NewSeededGenerator(1)
	const genIterations = 100_000

	start := time.Now()
	for i := 0; i < genIterations; i++ {
		_, _ = gen.Personal(kennitala.GenOptions{})
	}
	elapsed := time.Since(start)
	fmt.Printf("   Personal (strict):       %v total, %v/op\n", elapsed, elapsed/genIterations)

	start = time.Now()
	for i := 0; i < genIterations; i++ {
		_, _ = gen.Company(kennitala.GenOptions{})
	}
	elapsed = time.Since(start)
	fmt.Printf("   Company (strict):        %v total, %v/op\n", elapsed, elapsed/genIterations)

	start = time.Now()
	for i := 0; i < genIterations; i++ {
		_, _ = gen.Personal(kennitala.GenOptions{SkipChecksum: true})
	}
	elapsed = time.Since(start)
	fmt.Printf("   Personal (skipChecksum): %v total, %v/op\n", elapsed, elapsed/genIterations)
	fmt.Println()
}

func measureMasking() {
	fmt.Println("=== Masking Performance ===")
	fmt.Println()

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_, _ = kennitala.Mask("1201603389", 4)
	}
	elapsed := time.Since(start)
	fmt.Printf("   Mask: %v total, %v/op\n", elapsed, elapsed/iterations)
	fmt.Println()
}

func main() {
	fmt.Println("Kennitala Core - Performance Measurements")
	fmt.Println("=========================================")
	fmt.Println()

	measureValidation()
	measureParsing()
	measureGeneration()
	measureMasking()

	fmt.Println("Done.")
}

package evals

import (
	"regexp"
	"strings"
)

// KeywordSelector is a deterministic baseline ToolSelector built on keyword
// rules. It sets the floor an LLM has to beat and lets the eval suites run
// in CI without model access.
type KeywordSelector struct{}

var kennitalaPattern = regexp.MustCompile(`\b\d{6}-?\d{4}\b`)

// SelectTool picks a tool for the input using keyword heuristics. The
// returned args carry at most the kennitala extracted from the input.
func (KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	lower := strings.ToLower(input)
	args := map[string]any{}
	if kt := kennitalaPattern.FindString(input); kt != "" {
		args["kennitala"] = kt
	}

	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("dataset", "xml", "file", "einstaklingar", "gervig"):
		return "iceland_validate_dataset", args, nil
	case has("generate", "make me", "fake", "synthetic", "test id", "need a"):
		if has("company", "organization", "organisation", "félag", "firm") {
			return "iceland_generate_company", args, nil
		}
		return "iceland_generate_personal", args, nil
	case has("mask", "redact", "hide", "obscure"):
		return "iceland_mask_kennitala", args, nil
	case has("format", "hyphen", "normalize", "normalise"):
		return "iceland_format_kennitala", args, nil
	case has("born", "birth", "decode", "parse", "what does", "how old", "century"):
		return "iceland_parse_kennitala", args, nil
	default:
		return "iceland_validate_kennitala", args, nil
	}
}

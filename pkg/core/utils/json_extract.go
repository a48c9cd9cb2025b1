// Package utils holds the JSON extraction and repair helpers used at the
// LLM boundary, plus markdown cleanup for narrative report sections.
package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// StripCodeFences removes a wrapping markdown code block (```json ... ```
// or plain ``` ... ```) from an LLM reply.
func StripCodeFences(input string) string {
	cleaned := strings.TrimSpace(input)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

// ExtractJSONObject locates the first top-level JSON object in free-form LLM
// text by brace counting (string-aware, so braces inside values don't
// terminate the scan) and removes trailing commas. Returns an error when no
// balanced object is present.
func ExtractJSONObject(input string) (string, error) {
	text := StripCodeFences(input)

	start := strings.Index(text, "{")
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				return trailingCommaRe.ReplaceAllString(candidate, "$1"), nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object in response")
}

// ParseLLMJSON decodes an LLM reply into schema, trying progressively more
// lenient strategies:
//  1. brace-counted object slice with trailing-comma cleanup
//  2. json-repair on the raw text
//  3. Hjson, the most forgiving parser
func ParseLLMJSON(input string, schema interface{}) error {
	if candidate, err := ExtractJSONObject(input); err == nil {
		if err := json.Unmarshal([]byte(candidate), schema); err == nil {
			return nil
		}
	}

	if repaired, err := jsonrepair.RepairJSON(StripCodeFences(input)); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(StripCodeFences(input)), schema); err == nil {
		return nil
	}

	return fmt.Errorf("JSON_PARSE_FAILED: all parsing strategies failed")
}

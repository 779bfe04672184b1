package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	codeFencePattern  = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// DecodeJSONObject decodes the model reply into target. Strict JSON is tried
// first, then a fenced code block, then the outermost {...} span of the text.
func DecodeJSONObject(text string, target any) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrNoJSONObject
	}

	candidates := []string{trimmed}
	if match := codeFencePattern.FindStringSubmatch(trimmed); match != nil {
		candidates = append(candidates, match[1])
	}
	if span := jsonObjectPattern.FindString(trimmed); span != "" {
		candidates = append(candidates, span)
	}

	for _, candidate := range candidates {
		if !strings.HasPrefix(candidate, "{") || !json.Valid([]byte(candidate)) {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), target); err == nil {
			return nil
		}
	}
	return ErrNoJSONObject
}

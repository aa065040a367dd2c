// Package llm - util.go provides shared helpers for model response handling.
package llm

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CleanJSONBlock removes markdown code fences from a model response. Models
// often wrap JSON in ```json ... ``` blocks even when told not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		// Skip a bare language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// FirstJSONArray extracts the first well-formed JSON array embedded in text,
// tolerating surrounding prose. Returns false when no valid array is found.
func FirstJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}

	block := text[start : end+1]
	if !gjson.Valid(block) {
		return "", false
	}
	return block, true
}

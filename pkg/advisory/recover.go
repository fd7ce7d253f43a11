package advisory

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceRe matches fenced code blocks the model sometimes wraps JSON in.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// outermostRe is the last-resort match for the widest {...} span.
var outermostRe = regexp.MustCompile(`(?s)\{.*\}`)

const snippetLimit = 240

// RecoverJSON extracts a JSON object from a model response that may be bare
// JSON, JSON wrapped in prose, or JSON inside a fenced code block. Strategies
// run in order; the first that yields valid JSON wins. When all fail, the
// error is a *MalformedResponseError.
func RecoverJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)

	// 1. The whole response is JSON.
	if validObject(trimmed) {
		return json.RawMessage(trimmed), nil
	}

	// 2. Balanced-brace scan from the first '{'.
	if candidate, ok := balancedBraceScan(trimmed); ok && validObject(candidate) {
		return json.RawMessage(candidate), nil
	}

	// 3. Delimiter-bounded scan: fenced code blocks.
	if m := fenceRe.FindStringSubmatch(trimmed); len(m) == 2 && validObject(m[1]) {
		return json.RawMessage(m[1]), nil
	}

	// 4. Regex fallback on the outermost {...} span.
	if m := outermostRe.FindString(trimmed); m != "" && validObject(m) {
		return json.RawMessage(m), nil
	}

	snippet := trimmed
	if len(snippet) > snippetLimit {
		snippet = snippet[:snippetLimit]
	}
	return nil, &MalformedResponseError{Snippet: snippet}
}

func validObject(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var probe map[string]json.RawMessage
	return json.Unmarshal([]byte(s), &probe) == nil
}

// balancedBraceScan returns the first brace-balanced object in s, tracking
// string literals and escapes so braces inside values do not end the scan.
func balancedBraceScan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

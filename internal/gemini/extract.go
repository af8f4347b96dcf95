package gemini

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var fencedBlockRE = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// errNoJSON means no parseable JSON object could be recovered from the
// model output.
var errNoJSON = errors.New("no JSON object in response")

// decodeLoose recovers a JSON object from free-form model output and
// decodes it into v. Parse order:
//  1. the whole response as JSON
//  2. the contents of the first fenced code block
//  3. the first balanced top-level {...} substring
func decodeLoose(content string, v any) error {
	content = strings.TrimSpace(content)

	if json.Unmarshal([]byte(content), v) == nil {
		return nil
	}

	if matches := fencedBlockRE.FindStringSubmatch(content); len(matches) > 1 {
		if json.Unmarshal([]byte(strings.TrimSpace(matches[1])), v) == nil {
			return nil
		}
	}

	if obj, ok := firstObject(content); ok {
		if err := json.Unmarshal([]byte(obj), v); err == nil {
			return nil
		}
	}

	return errNoJSON
}

// firstObject returns the first brace-balanced {...} substring. String
// literals are skipped so braces inside values don't break the balance.
func firstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
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
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

package classifier

import (
	"errors"
	"regexp"
	"strings"
)

var (
	errNoJSONObject = errors.New("no JSON object in model response")

	fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")
)

// sanitizeJSONResponse strips code fences and stray backticks, then returns
// the first balanced {...} object in text.
func sanitizeJSONResponse(text string) (string, error) {
	text = strings.TrimSpace(text)
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	text = strings.ReplaceAll(text, "`", "")
	return firstJSONObject(text)
}

// firstJSONObject scans for a balanced object, ignoring braces inside strings.
func firstJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errNoJSONObject
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
				return text[start : i+1], nil
			}
		}
	}
	return "", errNoJSONObject
}

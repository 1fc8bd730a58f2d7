package utils

import "strings"

// ExtractJSONObject pulls the first complete JSON object out of free text.
// Providers wrap their JSON in prose or markdown fences more often than not,
// and a greedy first-{-to-last-} match truncates as soon as the surrounding
// text contains a stray brace, so this scans with brace depth and string
// escape state instead.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", ErrNoJSONFound
	}
	end := findMatchingBrace(text, start)
	if end == -1 {
		return "", ErrNoJSONFound
	}
	return text[start : end+1], nil
}

// findMatchingBrace returns the index of the brace closing the object opened
// at start, or -1 when the object never closes. Braces inside JSON strings
// do not count, and \" inside strings does not end the string.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

package nandoku

import (
	"regexp"
	"strings"
)

// Generative backends wrap JSON in prose or markdown fences more often
// than not. ExtractJSONObject pulls the first JSON object out of free-form
// text using two ordered strategies:
//
//  1. the content of a fenced code block (```json ... ``` or ``` ... ```)
//  2. the first balanced brace-delimited substring
//
// The second return value is false when neither strategy finds an object.
// The extracted text is not validated; decoding is the caller's job.
func ExtractJSONObject(text string) (string, bool) {
	if m := fenceRE.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return scanBraces(text)
}

var fenceRE = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// scanBraces returns the first substring with balanced top-level braces.
// Brace characters inside JSON strings are rare in practice for this
// payload shape, so a depth counter is enough.
func scanBraces(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

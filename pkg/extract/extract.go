// Package extract recovers named field values from semi-structured,
// possibly malformed JSON-like text. It is a tolerant scanner, not a
// parser: it never fails on bad input, it just reports "not found".
package extract

import "strings"

// Shape tags the syntactic shape of an extracted value.
type Shape int

const (
	ShapeString Shape = iota // quoted string, unescaped
	ShapeObject              // brace-balanced object, still raw text
	ShapeToken               // bare token (number, bool, null, word)
)

// RawValue is the textual value of a field before any typing.
type RawValue struct {
	Shape Shape
	Text  string
}

// Field locates `"name": <value>` in text and returns the value.
// Quoted strings are unescaped, nested objects are returned as their
// raw brace-balanced substring, anything else is a bare token trimmed
// at the next comma, closing brace, or newline.
//
// The scan is total: any malformed structure (unterminated quote,
// unbalanced braces, missing colon) yields ok == false, never a panic.
func Field(text, name string) (RawValue, bool) {
	needle := `"` + name + `"`
	from := 0
	for {
		idx := strings.Index(text[from:], needle)
		if idx < 0 {
			return RawValue{}, false
		}
		pos := from + idx + len(needle)
		pos = skipSpace(text, pos)
		if pos < len(text) && text[pos] == ':' {
			return value(text, skipSpace(text, pos+1))
		}
		// Matched a string occurrence that is not a key; keep looking.
		from += idx + len(needle)
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func value(s string, i int) (RawValue, bool) {
	if i >= len(s) {
		return RawValue{}, false
	}
	switch s[i] {
	case '"':
		return quoted(s, i)
	case '{':
		return object(s, i)
	default:
		return token(s, i)
	}
}

// quoted scans a string literal honoring \\ \" \n \r \t escapes and
// returns the unescaped content.
func quoted(s string, i int) (RawValue, bool) {
	var b strings.Builder
	j := i + 1
	for j < len(s) {
		c := s[j]
		if c == '\\' {
			if j+1 >= len(s) {
				return RawValue{}, false
			}
			switch s[j+1] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				// \" \\ and anything unrecognized keep the escaped byte
				b.WriteByte(s[j+1])
			}
			j += 2
			continue
		}
		if c == '"' {
			return RawValue{Shape: ShapeString, Text: b.String()}, true
		}
		b.WriteByte(c)
		j++
	}
	// unterminated quote
	return RawValue{}, false
}

// object scans a brace-balanced span by depth counting. The substring
// is returned raw, including the outer braces; it is not recursively
// parsed here.
func object(s string, i int) (RawValue, bool) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return RawValue{Shape: ShapeObject, Text: s[i : j+1]}, true
			}
		}
	}
	// ran out of input before depth returned to zero
	return RawValue{}, false
}

func token(s string, i int) (RawValue, bool) {
	j := i
	for j < len(s) && s[j] != ',' && s[j] != '}' && s[j] != '\n' {
		j++
	}
	t := strings.TrimSpace(s[i:j])
	if t == "" {
		return RawValue{}, false
	}
	return RawValue{Shape: ShapeToken, Text: t}, true
}

// BalancedObject returns the first brace-balanced {...} span in text
// whose body contains the quoted key, scanning candidate spans left to
// right. Used to dig a command object out of narrative prose.
func BalancedObject(text, mustContainKey string) (string, bool) {
	needle := `"` + mustContainKey + `"`
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		raw, ok := object(text, i)
		if !ok {
			// This open brace never balances; an inner one still may.
			continue
		}
		if strings.Contains(raw.Text, needle) {
			return raw.Text, true
		}
		i += len(raw.Text) - 1
	}
	return "", false
}

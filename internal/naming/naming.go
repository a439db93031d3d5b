// Package naming turns raw table and column identifiers into names that are
// safe to emit as TypeScript identifiers.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reservedKeywords collide with TypeScript built-in type names or keywords
// when used as a declaration or member name.
var reservedKeywords = map[string]bool{
	"string":  true,
	"number":  true,
	"package": true,
}

// Normalize suffixes reserved keywords with an underscore and returns any
// other name unchanged.
func Normalize(name string) string {
	if reservedKeywords[name] {
		return name + "_"
	}
	return name
}

// Camelize converts snake_case, kebab-case, dotted, space separated or
// camelCase names to PascalCase. Each word is capitalized and the rest of it
// lower cased, so all-caps words are folded and a letter following a digit
// run starts a new word.
// Examples: user_accounts -> UserAccounts, ORDERS -> Orders, user1accounts -> User1Accounts
func Camelize(name string) string {
	segments := strings.FieldsFunc(name, isDelimiter)
	if len(segments) == 0 {
		return ""
	}

	// Casers keep state between calls and must not be shared across goroutines.
	title := cases.Title(language.Und)

	var sb strings.Builder
	sb.Grow(len(name))
	for _, seg := range segments {
		for _, word := range splitWords(seg) {
			sb.WriteString(title.String(word))
		}
	}
	return sb.String()
}

func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// splitWords breaks a delimiter-free segment at camel humps
// (userAccounts -> user, Accounts; XMLHttp -> XML, Http) and after digit runs
// (user1accounts -> user1, accounts).
func splitWords(seg string) []string {
	runes := []rune(seg)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur),
			unicode.IsDigit(prev) && !unicode.IsDigit(cur),
			unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

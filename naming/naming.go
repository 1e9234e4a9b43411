package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Handler converts a single key into one naming convention.
// Implementations must be deterministic and free of side effects.
type Handler func(string) string

// Words splits s into words on separator runs and case boundaries.
// Digits stay attached to the word they follow.
func Words(s string) []string {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	var words []string
	start := -1

	for i, r := range runes {
		if !isWordRune(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if isUpper(r) && startsWord(runes, start, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}

	return words
}

// startsWord reports whether the upper-case rune at i begins a new word
// inside the run that began at start.
func startsWord(runes []rune, start, i int) bool {
	prev := lastBase(runes, start, i)
	if unicode.IsLower(prev) || unicode.IsNumber(prev) {
		return true
	}
	// HTTPServer: the S starts "Server" because a lower-case letter follows.
	if unicode.IsLetter(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}

// lastBase returns the nearest rune before i that is not a combining mark.
func lastBase(runes []rune, start, i int) rune {
	for j := i - 1; j >= start; j-- {
		if !unicode.IsMark(runes[j]) {
			return runes[j]
		}
	}
	return runes[start]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsTitle(r)
}

// Casers are stateful and not safe for concurrent use, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// capitalize title-cases the first rune of w and lowers the rest.
// Words without any lower-case letter (acronyms, "V2") keep their tail so
// that PascalCase output splits back into the same words.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	head := string(unicode.ToTitle(r))
	if !strings.ContainsFunc(w, unicode.IsLower) {
		return head + w[size:]
	}
	return head + lower(w[size:])
}

func joinWords(s, sep string, transform func(string) string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = transform(w)
	}
	return strings.Join(words, sep)
}

// ToSnakeCase converts a string to snake_case.
// Example: "UserID" -> "user_id"
// Example: "HTTPServer" -> "http_server"
func ToSnakeCase(s string) string {
	return joinWords(s, "_", lower)
}

// ToKebabCase converts a string to kebab-case.
// Like snake_case but with hyphens instead of underscores.
// Example: "UserID" -> "user-id"
func ToKebabCase(s string) string {
	return joinWords(s, "-", lower)
}

// ToConstantCase converts a string to CONSTANT_CASE.
// Example: "userId" -> "USER_ID"
func ToConstantCase(s string) string {
	return joinWords(s, "_", upper)
}

// ToDotCase converts a string to dot.case.
// Example: "UserID" -> "user.id"
func ToDotCase(s string) string {
	return joinWords(s, ".", lower)
}

// ToPascalCase converts a string to PascalCase.
// Example: "user_profile" -> "UserProfile"
// Example: "API" -> "API"
func ToPascalCase(s string) string {
	return joinWords(s, "", capitalize)
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first word lowercase.
// Example: "user_id" -> "userId"
// Example: "HTTPServer" -> "httpServer"
func ToCamelCase(s string) string {
	words := Words(s)
	for i, w := range words {
		if i == 0 {
			words[i] = lower(w)
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, "")
}

// ToTitleCase converts a string to space separated Title Case.
// Example: "user_id" -> "User Id"
func ToTitleCase(s string) string {
	return joinWords(s, " ", capitalize)
}

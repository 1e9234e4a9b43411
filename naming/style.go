package naming

import (
	"strings"

	"github.com/erraggy/keycase/keyerrors"
)

// Style identifies one of the standard case handlers.
type Style int

const (
	// StyleSnake is snake_case.
	StyleSnake Style = iota + 1
	// StyleCamel is camelCase.
	StyleCamel
	// StylePascal is PascalCase.
	StylePascal
	// StyleKebab is kebab-case.
	StyleKebab
	// StyleConstant is CONSTANT_CASE.
	StyleConstant
	// StyleTitle is Title Case.
	StyleTitle
	// StyleDot is dot.case.
	StyleDot
)

var styleNames = map[Style]string{
	StyleSnake:    "snake",
	StyleCamel:    "camel",
	StylePascal:   "pascal",
	StyleKebab:    "kebab",
	StyleConstant: "constant",
	StyleTitle:    "title",
	StyleDot:      "dot",
}

var styleHandlers = map[Style]Handler{
	StyleSnake:    ToSnakeCase,
	StyleCamel:    ToCamelCase,
	StylePascal:   ToPascalCase,
	StyleKebab:    ToKebabCase,
	StyleConstant: ToConstantCase,
	StyleTitle:    ToTitleCase,
	StyleDot:      ToDotCase,
}

// styleAliases maps normalized names (lowercase, separators and a trailing
// "case" removed) to styles.
var styleAliases = map[string]Style{
	"snake":          StyleSnake,
	"camel":          StyleCamel,
	"lowercamel":     StyleCamel,
	"pascal":         StylePascal,
	"uppercamel":     StylePascal,
	"kebab":          StyleKebab,
	"dash":           StyleKebab,
	"constant":       StyleConstant,
	"screamingsnake": StyleConstant,
	"upper":          StyleConstant,
	"title":          StyleTitle,
	"dot":            StyleDot,
}

// String returns the canonical name of the style.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether s is one of the defined styles.
func (s Style) IsValid() bool {
	_, ok := styleNames[s]
	return ok
}

// Handler returns the case handler for the style, or nil for an invalid style.
func (s Style) Handler() Handler {
	return styleHandlers[s]
}

// Styles returns every defined style in declaration order.
func Styles() []Style {
	return []Style{StyleSnake, StyleCamel, StylePascal, StyleKebab, StyleConstant, StyleTitle, StyleDot}
}

// StyleNames returns the canonical names of all styles.
func StyleNames() []string {
	styles := Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return names
}

var aliasCleaner = strings.NewReplacer("_", "", "-", "", " ", "", ".", "")

// ParseStyle resolves a style name. Canonical names ("snake") and the usual
// spellings ("snake_case", "camelCase", "kebab-case", "SCREAMING_SNAKE_CASE")
// are accepted; matching ignores case.
func ParseStyle(name string) (Style, error) {
	key := aliasCleaner.Replace(strings.ToLower(strings.TrimSpace(name)))
	if key != "case" {
		key = strings.TrimSuffix(key, "case")
	}
	if s, ok := styleAliases[key]; ok {
		return s, nil
	}
	return 0, &keyerrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: "must be one of " + strings.Join(StyleNames(), ", "),
	}
}

// IsStyleName reports whether name resolves to a style.
func IsStyleName(name string) bool {
	_, err := ParseStyle(name)
	return err == nil
}

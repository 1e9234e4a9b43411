// Package naming provides the case handlers keycase applies to mapping keys.
//
// A case handler is a pure function from string to string (see [Handler]).
// The package ships the standard handlers [ToSnakeCase], [ToCamelCase],
// [ToPascalCase], [ToKebabCase] and [ToConstantCase], plus [ToTitleCase]
// and [ToDotCase]. Each one is a fixed point of itself: applying it to its
// own output returns that output unchanged.
//
// All handlers share the word splitter [Words]. Runs of characters that are
// not letters, digits or combining marks separate words; inside a run a new
// word begins at an upper-case letter that follows a lower-case letter or a
// digit, or at an upper-case letter that starts a capitalized word after
// another letter:
//
//	Words("UserID")        // ["User", "ID"]
//	Words("HTTPServer")    // ["HTTP", "Server"]
//	Words("api_v2_client") // ["api", "v2", "client"]
//
// Letter case is changed with golang.org/x/text/cases, so non-ASCII keys
// such as "Größe" or "ÜberUser" are handled.
//
// A [Style] names one of the standard handlers and is what configuration
// and the CLI deal in:
//
//	style, err := naming.ParseStyle("camelCase")
//	if err != nil {
//	    return err
//	}
//	h := style.Handler()
//	h("user_id") // "userId"
package naming

// Package multicase rewrites the keys of nested documents into a naming
// convention and remembers where every key came from.
//
// # Values
//
// Documents are trees of [Value]: [Scalar] leaves, [List] sequences and
// ordered [*Map] mappings. The set is closed; transformations switch on
// these types instead of inspecting arbitrary Go values. [FromGo] and [ToGo]
// convert to and from plain map[string]any data, and the codec package
// decodes JSON, YAML and MessagePack into Values with key order intact.
//
// # Building a Dict
//
// [New] walks a source mapping depth-first and applies a case handler to
// every key, including keys of mappings nested inside sequences:
//
//	src := multicase.MapOf(
//	    multicase.Pair{Key: "UserInfo", Value: multicase.MapOf(
//	        multicase.Pair{Key: "FirstName", Value: multicase.ScalarOf("Ann")},
//	    )},
//	)
//	dict, err := multicase.New(src, naming.ToSnakeCase)
//	// dict: {"user_info": {"first_name": "Ann"}}
//
// The resulting [Dict] keeps, for each level, a reverse map from cased key to
// source key. When two source keys case to the same key, the first one in
// source order is kept and the later entry is dropped and reported by
// [Dict.Collisions]. Nothing is merged and no error is raised.
//
// # Re-casing
//
// [Dict.ReCase] and the accessors [Dict.SnakeCase], [Dict.CamelCase],
// [Dict.PascalCase], [Dict.KebabCase] and [Dict.ConstantCase] emit the same
// data under another convention as a plain [*Map], without going back to the
// source. [Dict.UserCase] restores the original keys.
//
// # Updates
//
// A Dict is immutable. [Dict.Set] cases the given key and returns a new Dict
// with the value replaced. Keys that were not part of the source are
// rejected with a *keyerrors.LookupError unless the Dict was built with
// [WithInsertUnknownKeys].
package multicase

// Package diag defines the recoverable diagnostics emitted while loading locales.
//
// A diagnostic never stops an operation. It is a categorized report identifying
// the offending file, key or language, delivered to a Reporter. The loader logs
// them by default and, in strict mode, collects them per operation and turns
// them into a *StrictError.
//
// # Categories
//
//   - DefaultLangFileNotFound: the default language file was missing and got generated.
//   - LangFileAlreadyExists: a file creation was skipped because the target exists.
//   - AlreadyInitialized: Init was called twice, or a file creation came after Init.
//   - UndefinedLocaleKey: a schema key was missing from a file and has been healed.
//   - UnexpectedLocaleKey: a file (or a dynamic lookup) used a key outside the schema.
//   - UnknownModifier: a "$"-prefixed key does not name a known directive.
//   - UnfilledLocaleKey: a key still holds its placeholder or an empty value.
//   - UndefinedLocale: a lookup asked for a language that was never loaded.
//
// # Usage
//
//	c := &diag.Collector{}
//	l, _ := loader.New(schema, loader.WithReporter(c))
//	_ = l.Init()
//	for _, d := range c.Diagnostics() {
//	    fmt.Println(d)
//	}
package diag

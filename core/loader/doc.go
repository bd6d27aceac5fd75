// Package loader provides the locale registry: it scans a translation directory,
// reconciles every file against the schema and serves the resulting records.
//
// # Lifecycle
//
// A Loader starts uninitialized. Init bootstraps the default-language file when it
// is missing, reconciles every file directly under the directory (non-recursive,
// lexical order) and freezes the result. Initialized is terminal: a second Init only
// emits an AlreadyInitialized diagnostic, and CreateLangFile is refused.
//
// # Lookup
//
// Records are indexed by file name without extension. A $lang_code directive changes
// the record's code but not its index key, so "de.json" overriding to "de-AT" is
// still served by Locale("de"). Unknown languages fall back to the default one with
// an UndefinedLocale diagnostic.
//
// # Usage
//
//	schema := locale.MustSchema("greeting", "farewell")
//	l, err := loader.New(schema, loader.WithPath("lang"), loader.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	if err := l.Init(); err != nil {
//	    return err
//	}
//	rec, _ := l.Locale("de")
//	fmt.Println(rec.Get("greeting"))
package loader

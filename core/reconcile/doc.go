// Package reconcile aligns one translation file with the locale schema and builds
// its immutable record.
//
// # Algorithm
//
// For every file the Engine:
//
//  1. loads the raw document through the configured backend (parse failures are
//     returned as *ParseError and never recovered here);
//  2. parses the "$" directives;
//  3. stops with ErrExcluded when $exclude is set, without touching the file;
//  4. reports every key that is neither a schema field nor a known directive as
//     unexpected (unknown "$" keys as unknown modifiers);
//  5. reports every schema field missing from the file and heals it with its own
//     name as a placeholder;
//  6. computes the canonical dump order: schema fields, present directives, then
//     unexpected keys;
//  7. rewrites the file in that order if anything was healed or found unexpected;
//  8. applies $redump (rewrite again, unconditionally) and then $lang_code
//     (override the record's language code; the file name is used otherwise);
//  9. strips directives and unexpected keys from the in-memory document;
//  10. joins list values with "\n";
//  11. builds the record.
//
// Every call works on its own fileContext, so calls never share state.
//
// # Usage
//
//	engine := reconcile.NewEngine(schema, document.NewJSON(2), reconcile.WithLogger(log))
//	rec, err := engine.Process("lang/en.json")
//	if errors.Is(err, reconcile.ErrExcluded) {
//	    // skip the file
//	}
package reconcile
